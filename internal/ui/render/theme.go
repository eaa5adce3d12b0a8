package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	StatusBg    tcell.Color
	StatusFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	HiddenFg    tcell.Color
	HelpFg      tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		StatusBg:    tcell.ColorBlue,
		StatusFg:    tcell.ColorWhite,
		SelectionBg: tcell.ColorWhite,
		SelectionFg: tcell.ColorBlack,
		DirectoryFg: tcell.ColorBlue,
		FileFg:      tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		HelpFg:      tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
	}
}
