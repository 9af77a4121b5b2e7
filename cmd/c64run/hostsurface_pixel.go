package main

import (
	"image"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/font/basicfont"

	"github.com/n-ulricksen/c64core/machine"
)

// c64Palette is the standard 16-color VIC-II palette, indexed by the
// low nibble stored in color RAM / $D020 / $D021.
var c64Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, {0xFF, 0xFF, 0xFF, 0xFF}, {0x88, 0x39, 0x32, 0xFF}, {0x67, 0xB6, 0xBD, 0xFF},
	{0x8B, 0x3F, 0x96, 0xFF}, {0x55, 0xA0, 0x49, 0xFF}, {0x40, 0x31, 0x8D, 0xFF}, {0xBF, 0xCE, 0x72, 0xFF},
	{0x8B, 0x54, 0x29, 0xFF}, {0x57, 0x42, 0x00, 0xFF}, {0xB8, 0x69, 0x62, 0xFF}, {0x50, 0x50, 0x50, 0xFF},
	{0x78, 0x78, 0x78, 0xFF}, {0x94, 0xE0, 0x89, 0xFF}, {0x78, 0x69, 0xC4, 0xFF}, {0x9F, 0x9F, 0x9F, 0xFF},
}

const (
	textCols  = 40
	textRows  = 25
	cellPx    = 8
	gameW     = textCols * cellPx * scale
	gameH     = textRows * cellPx * scale
	scale     = 2
	screenPosX = 500
	screenPosY = 300
)

// pixelHostSurface is a graphical HostSurface backed by faiface/pixel,
// rendering screen RAM and color RAM as a grid of colored cells (glyph
// shapes are out of scope; this is a bus-state visualizer, not a
// character ROM rasterizer) plus the border/background color.
type pixelHostSurface struct {
	window *pixelgl.Window
	rgba   *image.RGBA
	matrix pixel.Matrix

	screen  [textCols * textRows]byte
	color   [textCols * textRows]byte
	border  byte
	bg      byte

	statusAtlas *text.Atlas
	statusText  *text.Text
}

func newPixelHostSurface() (*pixelHostSurface, error) {
	rect := image.Rect(0, 0, textCols*cellPx, textRows*cellPx)
	rgba := image.NewRGBA(rect)

	cfg := pixelgl.WindowConfig{
		Title:    "c64core",
		Bounds:   pixel.R(0, 0, gameW, gameH+40),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, err
	}

	pic := pixel.PictureDataFromImage(rgba)
	matrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale)).Scaled(pic.Bounds().Center().Scaled(scale), scale)

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	status := text.New(pixel.V(8, 8), atlas)

	return &pixelHostSurface{
		window:      win,
		rgba:        rgba,
		matrix:      matrix,
		statusAtlas: atlas,
		statusText:  status,
	}, nil
}

func (h *pixelHostSurface) WriteScreen(offset int, value byte) {
	if offset < 0 || offset >= len(h.screen) {
		return
	}
	h.screen[offset] = value
}

func (h *pixelHostSurface) WriteColorRAM(offset int, value byte) {
	if offset < 0 || offset >= len(h.color) {
		return
	}
	h.color[offset] = value & 0x0F
}

func (h *pixelHostSurface) SetBorderColor(value byte)     { h.border = value & 0x0F }
func (h *pixelHostSurface) SetBackgroundColor(value byte) { h.bg = value & 0x0F }

// Render redraws the cell grid from the mirrored screen/color state and
// flips the window. Called once per machine frame by main's run loop.
func (h *pixelHostSurface) Render() {
	bg := c64Palette[h.bg]
	for row := 0; row < textRows; row++ {
		for col := 0; col < textCols; col++ {
			idx := row*textCols + col
			fg := bg
			if h.screen[idx] != 0 {
				fg = c64Palette[h.color[idx]]
			}
			fillCell(h.rgba, col, row, fg)
		}
	}

	h.window.Clear(c64Palette[h.border])
	sprite := pixel.NewSprite(pixel.PictureDataFromImage(h.rgba), pixel.PictureDataFromImage(h.rgba).Bounds())
	sprite.Draw(h.window, h.matrix)
	h.statusText.Draw(h.window, pixel.IM)
	h.window.Update()
}

func fillCell(img *image.RGBA, col, row int, c color.RGBA) {
	x0, y0 := col*cellPx, row*cellPx
	for y := 0; y < cellPx; y++ {
		for x := 0; x < cellPx; x++ {
			img.SetRGBA(x0+x, y0+y, c)
		}
	}
}

func (h *pixelHostSurface) WriteStatus(s string) {
	h.statusText.Clear()
	h.statusText.WriteString(s)
}

func (h *pixelHostSurface) Closed() bool {
	return h.window.Closed()
}

// pixelKeyboardSource polls a small set of C64-relevant keys via pixelgl,
// the same JustPressed-scan pattern the teacher's controller.go uses for
// its 8-button NES pad.
type pixelKeyboardSource struct {
	window *pixelgl.Window
}

var keyMap = map[pixelgl.Button]byte{
	pixelgl.KeyEnter: 0x0D,
	pixelgl.KeySpace: 0x20,
	pixelgl.KeyBackspace: 0x14,
}

func (k *pixelKeyboardSource) PollKey() byte {
	for btn, code := range keyMap {
		if k.window.JustPressed(btn) {
			return code
		}
	}
	for r := pixelgl.KeyA; r <= pixelgl.KeyZ; r++ {
		if k.window.JustPressed(r) {
			return byte('A' + (r - pixelgl.KeyA))
		}
	}
	return 0xFF
}

var _ machine.HostSurface = (*pixelHostSurface)(nil)
var _ machine.KeyboardSource = (*pixelKeyboardSource)(nil)
