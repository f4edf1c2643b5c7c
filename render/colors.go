package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the terminal view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbTunnelWall = tcell.NewRGBColor(90, 90, 110)   // Slate
	RgbRail       = tcell.NewRGBColor(150, 120, 80)  // Rust
	RgbRailTie    = tcell.NewRGBColor(70, 60, 50)    // Dark rust
	RgbScout      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHUD        = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDAlert   = tcell.NewRGBColor(255, 80, 80)   // Normal Red

	RgbRoadBlock = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbHurdle    = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbGate      = tcell.NewRGBColor(200, 80, 200)  // Magenta
	RgbTrain     = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbSpent     = tcell.NewRGBColor(80, 80, 80)    // Dim gray for consumed hit zones
)
