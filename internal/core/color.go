package core

// Color is a foreground color for a screen cell.
// It holds either an ANSI 256-color code ("12") or a hex triplet ("#33aaff"),
// which is exactly what lipgloss.Color accepts.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
	ColorGreen   Color = "2"
	ColorWhite   Color = "7"
)

// Game palette.
const (
	ColorBackground Color = "#0b0f13"
	ColorPaddle     Color = "#33aaff"
	ColorBallLive   Color = "#ffaa33"
	ColorBallIdle   Color = "#aaaaaa"
	ColorHUD        Color = "#99aadd"
)
