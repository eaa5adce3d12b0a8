package state

import (
	fsutil "fex/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// AppState is the single source of truth for navigation. Entries and the
// selection only change through the StateReducer.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Entries     []FileEntry // Current listing, ".." first, then dirs, then files
	ShowHidden  bool

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Last recoverable failure (editor exit status, spawn error). Shown in
	// the status line until the next activation clears it.
	LastError error
}

// CurrentEntry returns the selected entry, or nil when the listing is empty.
func (s *AppState) CurrentEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// ListHeight is the number of entry rows the screen can show: everything
// between the status line and the help line.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - 2
	if h < 1 {
		h = 1
	}
	return h
}

// clampSelection forces SelectedIndex back into [0, len(Entries)-1], or 0 for
// an empty listing.
func (s *AppState) clampSelection() {
	if len(s.Entries) == 0 {
		s.SelectedIndex = 0
		return
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex > len(s.Entries)-1 {
		s.SelectedIndex = len(s.Entries) - 1
	}
}

// updateScrollVisibility moves the scroll window so the selection stays on
// screen.
func (s *AppState) updateScrollVisibility() {
	height := s.ListHeight()

	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ScrollOffset+height {
		s.ScrollOffset = s.SelectedIndex - height + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if max := len(s.Entries) - height; s.ScrollOffset > max {
		if max < 0 {
			max = 0
		}
		s.ScrollOffset = max
	}
}
