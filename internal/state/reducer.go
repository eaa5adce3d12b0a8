package state

import (
	"path/filepath"
)

// StateReducer applies Actions to an AppState. Every entry/selection change
// flows through Reduce; everything else only reads state.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies one action. Errors are only returned for unrecoverable
// conditions (no readable directory anywhere on the ancestor chain).
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		if state.SelectedIndex < len(state.Entries)-1 {
			state.SelectedIndex++
		}
		state.updateScrollVisibility()
		return state, nil

	case NavigateUpAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		if state.SelectedIndex > 0 {
			state.SelectedIndex--
		}
		state.updateScrollVisibility()
		return state, nil

	case EnterDirectoryAction:
		entry := state.CurrentEntry()
		if entry == nil || !entry.IsDir {
			return state, nil
		}
		return state, r.changeDirectory(state, CanonicalPath(entry.FullPath))

	case GoUpAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == "" || parent == state.CurrentPath {
			// Already at filesystem root
			return state, nil
		}
		return state, r.changeDirectory(state, CanonicalPath(parent))

	// ===== VIEW =====

	case ToggleHiddenFilesAction:
		state.ShowHidden = !state.ShowHidden
		return state, r.changeDirectory(state, state.CurrentPath)

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampSelection()
		state.updateScrollVisibility()
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) changeDirectory(state *AppState, path string) error {
	return LoadDirectory(state, path)
}

// CanonicalPath resolves symlinks and relative components to an absolute
// form. When resolution fails (dangling link, permission race) the path is
// cleaned lexically instead of failing the navigation.
func CanonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}
