package app

import (
	"fmt"
	"os"
	"os/exec"

	statepkg "fex/internal/state"
)

// handleActivate opens the selected entry: directories are entered, files are
// handed to the external editor.
func (app *Application) handleActivate() {
	entry := app.state.CurrentEntry()
	if entry == nil {
		return
	}

	if entry.IsDir {
		if _, err := app.reducer.Reduce(app.state, statepkg.EnterDirectoryAction{}); err != nil {
			app.fail(err)
		}
		return
	}

	app.state.LastError = nil
	if err := app.openFileInEditor(entry.FullPath); err != nil {
		// The terminal could not be restored to UI mode; continuing would
		// leave it in an inconsistent state.
		app.fail(err)
	}
}

// openFileInEditor suspends the UI, runs the editor on filePath as a
// foreground child with inherited stdio, then resumes the UI with a full
// repaint. Editor process failures land in state.LastError and the session
// continues; only terminal mode transitions can fail this call.
func (app *Application) openFileInEditor(filePath string) error {
	if len(app.editorCmd) == 0 {
		app.state.LastError = fmt.Errorf("no editor available (set $VISUAL or $EDITOR)")
		return nil
	}

	if err := app.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	runErr := app.runEditor(app.editorArgsWithFile(filePath))

	if err := app.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	app.screen.Sync()

	if runErr != nil {
		app.state.LastError = fmt.Errorf("editor: %w", runErr)
	}
	return nil
}

func (app *Application) runEditorProcess(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (app *Application) editorArgsWithFile(filePath string) []string {
	args := make([]string, len(app.editorCmd)+1)
	copy(args, app.editorCmd)
	args[len(app.editorCmd)] = filePath
	return args
}
