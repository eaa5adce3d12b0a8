package input

import (
	statepkg "fex/internal/state"
	"github.com/gdamore/tcell/v2"
)

// InputHandler converts tcell events to Actions
type InputHandler struct{}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Translate maps one terminal event to an Action. A nil result means the
// event has no binding and is ignored.
func (ih *InputHandler) Translate(ev tcell.Event) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.translateKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: h}
	}
	return nil
}

func (ih *InputHandler) translateKey(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		return statepkg.NavigateDownAction{}
	case tcell.KeyEnter:
		return statepkg.ActivateAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.GoUpAction{}
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return statepkg.QuitAction{}
		case 'h':
			return statepkg.ToggleHiddenFilesAction{}
		}
	}
	return nil
}
