package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbTrack      = tcell.NewRGBColor(36, 40, 59)    // Lane surface
	RgbLaneLine   = tcell.NewRGBColor(86, 95, 137)   // Lane separators
	RgbHorizon    = tcell.NewRGBColor(122, 162, 247) // Far edge of the track

	RgbPlayer       = tcell.NewRGBColor(255, 255, 255) // Bright white
	RgbPlayerAir    = tcell.NewRGBColor(135, 206, 250) // Light sky blue while jumping
	RgbPlayerDuck   = tcell.NewRGBColor(144, 238, 144) // Light grass green while ducking
	RgbPlayerCrash  = tcell.NewRGBColor(255, 0, 0)     // Error red after a hit
	RgbObstacleFull = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbObstacleLow  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCoin         = tcell.NewRGBColor(255, 255, 0)   // Bright yellow

	RgbTitle       = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbText        = tcell.NewRGBColor(192, 202, 245) // Foreground
	RgbDimText     = tcell.NewRGBColor(130, 130, 130) // Gray for hints
	RgbButtonBg    = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbButtonText  = tcell.NewRGBColor(0, 0, 0)       // Dark text on buttons
	RgbScore       = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbGameOver    = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbStatusOK    = tcell.NewRGBColor(144, 238, 144) // Green for an active pose source
	RgbStatusWarn  = tcell.NewRGBColor(255, 165, 0)   // Orange for fallback
	RgbDebugMetric = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)
