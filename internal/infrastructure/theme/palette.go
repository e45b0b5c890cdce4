package theme

import "walletstate/internal/domain/entity"

var palettes = map[entity.Colorway]map[string]entity.Color{
	entity.ColorwayLight: {
		"accent1": {R: 0, G: 170, B: 120},
		"accent2": {R: 255, G: 153, B: 51},
		"accent3": {R: 246, G: 36, B: 35},
		"accent4": {R: 140, G: 90, B: 255},
		"accent5": {R: 0, G: 180, B: 220},
		"accent6": {R: 220, G: 180, B: 0},
		"accent7": {R: 235, G: 70, B: 160},
		"accent8": {R: 40, G: 110, B: 240},
	},
	entity.ColorwayDark: {
		"accent1": {R: 0, G: 210, B: 180},
		"accent2": {R: 255, G: 153, B: 51},
		"accent3": {R: 255, G: 0, B: 174},
		"accent4": {R: 175, G: 130, B: 255},
		"accent5": {R: 0, G: 210, B: 255},
		"accent6": {R: 255, G: 220, B: 80},
		"accent7": {R: 255, G: 120, B: 200},
		"accent8": {R: 80, G: 150, B: 255},
	},
}

var neutral = map[entity.Colorway]entity.Color{
	entity.ColorwayLight: {R: 120, G: 120, B: 130},
	entity.ColorwayDark:  {R: 160, G: 160, B: 170},
}

// Resolve maps a theme token to a color. Unknown colorways fall back to dark,
// unknown tokens to the colorway's neutral color.
func Resolve(token string, colorway entity.Colorway) entity.Color {
	palette, ok := palettes[colorway]
	if !ok {
		colorway = entity.ColorwayDark
		palette = palettes[colorway]
	}
	if c, ok := palette[token]; ok {
		return c
	}
	return neutral[colorway]
}
