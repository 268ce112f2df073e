package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Palette (GitHub dark)
var (
	ColorBackground = color.NRGBA{R: 13, G: 17, B: 23, A: 255}
	ColorForeground = color.NRGBA{R: 201, G: 209, B: 217, A: 255}
	ColorMuted      = color.NRGBA{R: 139, G: 148, B: 158, A: 255}
	ColorCard       = color.NRGBA{R: 22, G: 27, B: 34, A: 255}
	ColorButton     = color.NRGBA{R: 33, G: 38, B: 45, A: 255}
	ColorHover      = color.NRGBA{R: 45, G: 51, B: 59, A: 255}
	ColorPressed    = color.NRGBA{R: 27, G: 31, B: 36, A: 255}
	ColorSeparator  = color.NRGBA{R: 48, G: 54, B: 61, A: 255}
	ColorPrimary    = color.NRGBA{R: 88, G: 166, B: 255, A: 255}
	ColorSuccess    = color.NRGBA{R: 63, G: 185, B: 80, A: 255}
	ColorError      = color.NRGBA{R: 248, G: 81, B: 73, A: 255}
	ColorWarning    = color.NRGBA{R: 210, G: 153, B: 34, A: 255}
	ColorShadow     = color.NRGBA{R: 0, G: 0, B: 0, A: 150}
)

// Layout sizing
const (
	WindowMargin    float32 = 60
	SectionSpacing  float32 = 30
	CardRadius      float32 = 16
	CardPadding     float32 = 20
	ButtonRadius    float32 = 12
	TitleTextSize   float32 = 32
	DescTextSize    float32 = 16
	ButtonTextSize  float32 = 14
	ButtonMinHeight float32 = 50
	ButtonMinWidth  float32 = 180

	// Used when the preview card has not been laid out yet
	FallbackPreviewWidth  = 1280
	FallbackPreviewHeight = 720
)

// Text fragments
const (
	DashPlaceholder = "—"
	BulletPrefix    = "• "
)
