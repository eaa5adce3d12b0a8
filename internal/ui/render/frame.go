package render

import (
	"fmt"

	statepkg "fex/internal/state"
	textutil "fex/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// HelpLegend is the static key binding line shown at the bottom of the
// screen.
const HelpLegend = "↑/↓: Navigate  Enter: Open dir/file  Backspace: Up  h: Toggle hidden  q: Quit"

const (
	sizeColumnWidth = 12
	timeColumnWidth = 19 // len("2006-01-02 15:04:05")
	maxNameWidth    = 40
	minNameWidth    = 10
)

// Row is one rendered entry line.
type Row struct {
	Text     string
	IsDir    bool
	Hidden   bool
	Selected bool
}

// Frame is the complete visual description of one screen: status line, the
// visible slice of the entry list, and the help line. StatusError is the
// trailing part of the status line that is drawn in the error color.
type Frame struct {
	Status      string
	StatusError string
	Rows        []Row
	Help        string
}

// BuildFrame projects navigation state onto a frame for a width x height
// screen. It is a pure function: identical state and dimensions always
// produce an identical frame, so it is called once per loop iteration with no
// caching.
func BuildFrame(state *statepkg.AppState, width, height int) Frame {
	frame := Frame{
		Status:      " " + state.CurrentPath,
		StatusError: statusError(state),
		Help:        HelpLegend,
	}

	listHeight := height - 2
	if listHeight < 1 {
		listHeight = 1
	}

	offset := state.ScrollOffset
	if offset < 0 {
		offset = 0
	}

	for i := offset; i < offset+listHeight && i < len(state.Entries); i++ {
		entry := state.Entries[i]
		frame.Rows = append(frame.Rows, Row{
			Text:     formatEntryRow(entry, width),
			IsDir:    entry.IsDir,
			Hidden:   entry.Name != ".." && entry.IsHidden(),
			Selected: i == state.SelectedIndex,
		})
	}

	return frame
}

func statusError(state *statepkg.AppState) string {
	if state.LastError == nil {
		return ""
	}
	return fmt.Sprintf("  [%v]", state.LastError)
}

func formatEntryRow(entry statepkg.FileEntry, width int) string {
	name := textutil.SanitizeEntryName(entry.Name)
	if entry.IsDir {
		name += "/"
	}

	sizeLabel := "DIR"
	if !entry.IsDir {
		sizeLabel = formatSize(entry.Size)
	}

	nameWidth := width - sizeColumnWidth - timeColumnWidth - 4
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	name = runewidth.Truncate(name, nameWidth, "…")
	name = runewidth.FillRight(name, nameWidth)

	return fmt.Sprintf(" %s %-*s %s", name, sizeColumnWidth, sizeLabel, entry.ModifiedLabel())
}

// formatSize renders a byte count with binary-prefixed units.
func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
