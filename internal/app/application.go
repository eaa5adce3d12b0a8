package app

import (
	"os"
	"path/filepath"

	statepkg "fex/internal/state"
	inputui "fex/internal/ui/input"
	renderui "fex/internal/ui/render"
	"github.com/gdamore/tcell/v2"
)

// Config is the command-line surface: where to start browsing and whether
// hidden files are visible.
type Config struct {
	StartPath  string // empty means the current working directory
	ShowHidden bool
}

// Application represents the running app. It owns the tcell screen (the
// terminal session resource) for its whole lifetime: acquired here, suspended
// around editor handoffs, released on every exit path.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	editorCmd  []string
	shouldQuit bool
	fatalErr   error

	// runEditor is swapped out in tests so no child process is spawned.
	runEditor func(args []string) error
}

func NewApplication(cfg Config) (*Application, error) {
	startPath, err := resolveStartPath(cfg.StartPath)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	editorCmd, _ := detectEditorCommand()

	state := &statepkg.AppState{
		CurrentPath: startPath,
		ShowHidden:  cfg.ShowHidden,
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	if err := statepkg.LoadDirectory(state, startPath); err != nil {
		screen.Fini()
		return nil, err
	}

	app := &Application{
		screen:    screen,
		state:     state,
		reducer:   statepkg.NewStateReducer(),
		renderer:  renderui.NewRenderer(screen),
		input:     inputui.NewInputHandler(),
		editorCmd: editorCmd,
	}
	app.runEditor = app.runEditorProcess
	return app, nil
}

// Close cleans up resources. Fini is safe to call after Run has already
// released the screen.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// CurrentPath returns the directory being browsed.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

func resolveStartPath(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return statepkg.CanonicalPath(cwd), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return statepkg.CanonicalPath(abs), nil
}
