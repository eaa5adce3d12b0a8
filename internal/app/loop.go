package app

import (
	statepkg "fex/internal/state"
)

// Run drives the browse loop: draw the current state, block on the next
// terminal event, dispatch. The redraw happens once per iteration whether or
// not the event changed anything. Returns non-nil only when the session
// cannot continue (terminal mode failure, no readable directory left).
func (app *Application) Run() error {
	defer app.screen.Fini()

	for !app.shouldQuit {
		app.renderer.Render(app.state)

		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen was finalized out from under us.
			break
		}

		action := app.input.Translate(ev)
		if action == nil {
			continue
		}
		app.handleAction(action)
	}

	return app.fatalErr
}

func (app *Application) handleAction(action statepkg.Action) {
	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
	case statepkg.ActivateAction:
		app.handleActivate()
	default:
		if _, err := app.reducer.Reduce(app.state, action); err != nil {
			// Every ancestor up to the root is unreadable; there is no valid
			// listing left to present.
			app.fail(err)
		}
	}
}

func (app *Application) fail(err error) {
	app.fatalErr = err
	app.shouldQuit = true
}
