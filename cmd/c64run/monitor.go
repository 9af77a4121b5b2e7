package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/n-ulricksen/c64core/machine"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// monitorHostSurface is a headless HostSurface: it mirrors screen/color
// RAM and the border/background colors into plain byte arrays, with no
// windowing dependency at all; the monitor's View does not display them.
// It satisfies machine.HostSurface so the
// machine never has to know whether it's being watched by a window or a
// terminal.
type monitorHostSurface struct {
	screen [1000]byte
	color  [1000]byte
	border byte
	bg     byte
}

func (m *monitorHostSurface) WriteScreen(offset int, v byte) {
	if offset >= 0 && offset < len(m.screen) {
		m.screen[offset] = v
	}
}

func (m *monitorHostSurface) WriteColorRAM(offset int, v byte) {
	if offset >= 0 && offset < len(m.color) {
		m.color[offset] = v & 0x0F
	}
}

func (m *monitorHostSurface) SetBorderColor(v byte)     { m.border = v & 0x0F }
func (m *monitorHostSurface) SetBackgroundColor(v byte) { m.bg = v & 0x0F }

// monitorKeyboardSource lets the bubbletea key handler hand a single
// pending byte to Machine.PollKeyboard, the same injection path the
// pixel-backed surface uses.
type monitorKeyboardSource struct {
	pending byte
}

func (k *monitorKeyboardSource) PollKey() byte {
	v := k.pending
	k.pending = 0xFF
	return v
}

type monitorModel struct {
	m        *machine.Machine
	host     *monitorHostSurface
	keyboard *monitorKeyboardSource
	running  bool
	stepN    int
}

func newMonitorModel(m *machine.Machine, host *monitorHostSurface, kbd *monitorKeyboardSource) monitorModel {
	return monitorModel{m: m, host: host, keyboard: kbd}
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (mm monitorModel) Init() tea.Cmd {
	return tick()
}

func (mm monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return mm, tea.Quit
		case " ":
			mm.running = !mm.running
			return mm, nil
		case "n":
			mm.stepOnce()
			return mm, nil
		default:
			if len(msg.String()) == 1 {
				mm.keyboard.pending = msg.String()[0]
			}
		}
	case tickMsg:
		if mm.running {
			for i := 0; i < 1000; i++ {
				mm.stepOnce()
			}
		}
		return mm, tick()
	}
	return mm, nil
}

func (mm *monitorModel) stepOnce() {
	mm.m.Step()
	mm.m.PollKeyboard(mm.keyboard)
	mm.stepN++
}

func (mm monitorModel) View() string {
	regs := fmt.Sprintf(
		"PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X  CYC:%d  step#%d",
		mm.m.CPU.PC, mm.m.CPU.A, mm.m.CPU.X, mm.m.CPU.Y, mm.m.CPU.SP, mm.m.CPU.Status,
		mm.m.CPU.CycleCount, mm.stepN,
	)

	diss := mm.m.CPU.Disassemble(mm.m.CPU.PC, mm.m.CPU.PC+16)
	var lines []string
	for addr := mm.m.CPU.PC; addr <= mm.m.CPU.PC+16 && len(lines) < 6; addr++ {
		if s, ok := diss[addr]; ok {
			lines = append(lines, s)
		}
	}

	ciaStatus := fmt.Sprintf("CIA1 IRQ pending:%v  CIA2 IRQ pending:%v  VIC raster IRQ pending:%v  IRQ in flight:%v",
		mm.m.Bus.CIA1.IRQPending(), mm.m.Bus.CIA2.IRQPending(), mm.m.Bus.VIC.IRQPending(), mm.m.CPU.IRQInFlight)

	regPane := paneStyle.Render(headingStyle.Render("registers") + "\n" + regs + "\n" + ciaStatus)
	instPane := paneStyle.Render(headingStyle.Render("disassembly") + "\n" + strings.Join(lines, "\n"))

	help := "space: run/pause  n: single-step  q: quit"
	return lipgloss.JoinVertical(lipgloss.Left, regPane, instPane, help)
}

// runMonitor drives the terminal monitor until the user quits.
func runMonitor(m *machine.Machine) error {
	host := &monitorHostSurface{}
	m.Bus.Host = host
	m.Bus.VIC.Host = host
	kbd := &monitorKeyboardSource{pending: 0xFF}

	p := tea.NewProgram(newMonitorModel(m, host, kbd))
	_, err := p.Run()
	return err
}

var _ machine.HostSurface = (*monitorHostSurface)(nil)
var _ machine.KeyboardSource = (*monitorKeyboardSource)(nil)
