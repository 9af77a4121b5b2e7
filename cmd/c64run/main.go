package main

import (
	"flag"
	"log"
	"os"
	"sort"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v2"

	"github.com/n-ulricksen/c64core/machine"
)

func main() {
	// glog parses flags out of the standard flag package; give it an
	// empty set so its own -v/-logtostderr flags don't collide with cli.v2.
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	app := &cli.App{
		Name:    "c64run",
		Usage:   "run a C64-class ROM image against the 6502 core",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "char-rom",
				Usage: "path to the 4KiB character ROM image",
			},
			&cli.StringFlag{
				Name:  "basic-rom",
				Usage: "path to the 8KiB BASIC ROM image",
			},
			&cli.StringFlag{
				Name:  "kernal-rom",
				Usage: "path to the 8KiB KERNAL ROM image",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every instruction's disassembly to a trace file",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "trace file path used with --debug",
				Value: "c64run.trace",
			},
			&cli.BoolFlag{
				Name:  "monitor",
				Usage: "run the terminal register/disassembly monitor instead of the graphical window",
			},
			&cli.BoolFlag{
				Name:  "fast-boot",
				Usage: "skip past a tight self-loop at the reset vector instead of running it out",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "target machine model",
				Value: "c64",
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		glog.Fatalf("c64run: %v", err)
	}
}

func run(c *cli.Context) error {
	model := c.String("model")
	if model != "c64" {
		return cli.Exit(errors.Errorf("unsupported --model %q (only \"c64\" is implemented)", model), 1)
	}

	rom, err := machine.LoadROMSet(c.String("char-rom"), c.String("basic-rom"), c.String("kernal-rom"))
	if err != nil {
		glog.Errorf("ROM load failed: %v", errors.Cause(err))
		return cli.Exit(err, 1)
	}
	glog.Infof("loaded ROM set (char=%dB basic=%dB kernal=%dB)", len(rom.Char), len(rom.Basic), len(rom.Kernal))

	if c.Bool("monitor") {
		return runWithMonitor(rom, c)
	}
	return runWithWindow(rom, c)
}

func runWithMonitor(rom *machine.ROMSet, c *cli.Context) error {
	host := &monitorHostSurface{}
	m := machine.NewMachine(rom, host)
	m.Reset()
	attachDebugTrace(m, c)

	glog.Infof("starting terminal monitor")
	if err := runMonitor(m); err != nil {
		return cli.Exit(errors.Wrap(err, "monitor exited with error"), 1)
	}
	return nil
}

func runWithWindow(rom *machine.ROMSet, c *cli.Context) error {
	host, err := newPixelHostSurface()
	if err != nil {
		return cli.Exit(errors.Wrap(err, "failed to open graphical window"), 1)
	}

	m := machine.NewMachine(rom, host)
	m.Reset()
	attachDebugTrace(m, c)

	kbd := &pixelKeyboardSource{window: host.window}
	fastBoot := c.Bool("fast-boot")
	skippedLoop := false
	cyclesPerFrame := uint64(m.Scheduler.CPUHz / m.Scheduler.FrameRate)

	glog.Infof("starting graphical window")
	for !host.Closed() {
		before := m.CPU.CycleCount
		m.Step()
		m.PollKeyboard(kbd)

		if fastBoot && !skippedLoop && m.LoopDetected() {
			glog.Infof("reset-vector loop detected, advancing past it (--fast-boot)")
			m.CPU.PC += 3
			skippedLoop = true
		}

		if before/cyclesPerFrame != m.CPU.CycleCount/cyclesPerFrame {
			host.Render()
			time.Sleep(time.Microsecond)
		}
	}
	return nil
}

func attachDebugTrace(m *machine.Machine, c *cli.Context) {
	if !c.Bool("debug") {
		return
	}
	path := c.String("log")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		glog.Warningf("could not open trace file %q: %v", path, err)
		return
	}
	m.CPU.Trace = log.New(f, "", 0)
}
