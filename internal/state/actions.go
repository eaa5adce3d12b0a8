package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}

// ===== APPLICATION ACTIONS =====

// ActivateAction is handled by the app layer: it either descends into the
// selected directory or hands the selected file to the external editor.
type ActivateAction struct{}

type QuitAction struct{}
