package random

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	greenBlueHueMin  = 100.0
	greenBlueHueSpan = 60.0
	saturation       = 70
	lightness        = 50
)

// Hue returns a random hue in range [min, min+span), wrapped into [0, 360)
func Hue(min, span float64) float64 {
	if span <= 0 {
		return math.Mod(min, 360)
	}

	h := min + rand.Float64()*span
	return math.Mod(h, 360)
}

// HSL formats a CSS hsl() color, rounding the hue to whole degrees
func HSL(hue float64, saturationPct, lightnessPct int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Floor(hue)), saturationPct, lightnessPct)
}

// GreenBlueColor returns a random green-to-blue color
// Example: "hsl(127, 70%, 50%)"
func GreenBlueColor() string {
	return HSL(Hue(greenBlueHueMin, greenBlueHueSpan), saturation, lightness)
}
