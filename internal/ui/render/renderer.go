package render

import (
	statepkg "fex/internal/state"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws frames onto a tcell screen. It owns no navigation state; the
// frame is recomputed from scratch on every call.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render projects the state into a frame and draws it.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()
	frame := BuildFrame(state, w, h)

	statusStyle := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)
	errorStyle := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.ErrorFg)
	x := r.drawText(0, 0, w, frame.Status, statusStyle)
	x = r.drawText(x, 0, w, frame.StatusError, errorStyle)
	r.padLine(x, 0, w, statusStyle)

	for i, row := range frame.Rows {
		style := tcell.StyleDefault.Foreground(r.theme.FileFg)
		switch {
		case row.Selected:
			style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		case row.IsDir:
			style = tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
		}
		if row.Hidden && !row.Selected {
			style = style.Foreground(r.theme.HiddenFg)
		}
		r.drawLine(1+i, w, row.Text, style)
	}

	helpStyle := tcell.StyleDefault.Foreground(r.theme.HelpFg)
	r.drawLine(h-1, w, frame.Help, helpStyle)

	r.screen.Show()
}

// drawLine writes text at row y and pads the remainder of the row with the
// same style so selection and status backgrounds span the full width.
func (r *Renderer) drawLine(y, width int, text string, style tcell.Style) {
	x := r.drawText(0, y, width, text, style)
	r.padLine(x, y, width, style)
}

// drawText writes text starting at column x and returns the column after the
// last cell written.
func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, ru := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		cw := runewidth.RuneWidth(ru)
		if cw < 1 {
			cw = 1
		}
		x += cw
	}
	return x
}

func (r *Renderer) padLine(x, y, width int, style tcell.Style) {
	for ; x < width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
