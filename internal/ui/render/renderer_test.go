package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	statepkg "fex/internal/state"
	"github.com/gdamore/tcell/v2"
)

func TestRendererDrawsFrameToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(60, 8)

	state := &statepkg.AppState{
		CurrentPath: "/home/me",
		Entries: []statepkg.FileEntry{
			{Name: "docs", IsDir: true, Modified: time.Now()},
			{Name: "a.txt", Size: 5, Modified: time.Now()},
		},
		SelectedIndex: 0,
		ScreenWidth:   60,
		ScreenHeight:  8,
	}

	NewRenderer(screen).Render(state)

	if got := simulationRow(screen, 0); !strings.Contains(got, "/home/me") {
		t.Errorf("status row missing path: %q", got)
	}
	if got := simulationRow(screen, 1); !strings.Contains(got, "docs/") {
		t.Errorf("first entry row missing directory: %q", got)
	}
	if got := simulationRow(screen, 7); !strings.Contains(got, "Quit") {
		t.Errorf("help row missing legend: %q", got)
	}
}

func TestRendererDrawsErrorSegmentInErrorColor(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 8)

	state := &statepkg.AppState{
		CurrentPath:  "/home/me",
		LastError:    errors.New("editor: exit status 1"),
		ScreenWidth:  80,
		ScreenHeight: 8,
	}

	NewRenderer(screen).Render(state)

	theme := GetColorTheme()
	cells, w, _ := screen.GetContents()
	var pathFg, errFg tcell.Color
	for x := 0; x < w; x++ {
		cell := cells[x]
		if len(cell.Runes) == 0 {
			continue
		}
		fg, bg, _ := cell.Style.Decompose()
		if bg != theme.StatusBg {
			t.Fatalf("status cell %d lost the status background", x)
		}
		switch cell.Runes[0] {
		case '/':
			pathFg = fg
		case '[':
			errFg = fg
		}
	}
	if pathFg != theme.StatusFg {
		t.Errorf("path drawn with %v, want %v", pathFg, theme.StatusFg)
	}
	if errFg != theme.ErrorFg {
		t.Errorf("error segment drawn with %v, want %v", errFg, theme.ErrorFg)
	}
}

func simulationRow(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) > 0 {
			b.WriteRune(cell.Runes[0])
		}
	}
	return b.String()
}
