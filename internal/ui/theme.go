package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DarkTheme is the GitHub-dark look of the main window and its dialogs.
// It ignores the system variant and always renders dark.
type DarkTheme struct{}

// NewDarkTheme creates a new dark theme
func NewDarkTheme() fyne.Theme {
	return &DarkTheme{}
}

// Color returns theme colors
func (t *DarkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorForeground
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMuted
	case theme.ColorNameButton, theme.ColorNameDisabledButton:
		return ColorButton
	case theme.ColorNameHover:
		return ColorHover
	case theme.ColorNamePressed:
		return ColorPressed
	case theme.ColorNameInputBackground, theme.ColorNameHeaderBackground:
		return ColorCard
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return ColorSeparator
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameShadow:
		return ColorShadow
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *DarkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DarkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DarkTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return ButtonTextSize
	case theme.SizeNameHeadingText:
		return TitleTextSize
	case theme.SizeNameSubHeadingText:
		return DescTextSize
	case theme.SizeNameInnerPadding:
		return 12 // taller buttons
	case theme.SizeNameInputRadius:
		return ButtonRadius
	case theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
