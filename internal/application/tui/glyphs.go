package tui

import "github.com/Ukiyograin/YourWeather/internal/domain/weathercode"

var glyphs = map[string]string{
	weathercode.IconSunny:             "☀",
	weathercode.IconClearNight:        "☾",
	weathercode.IconPartlyCloudyDay:   "⛅",
	weathercode.IconPartlyCloudyNight: "☁",
	weathercode.IconFog:               "≡",
	weathercode.IconDrizzle:           "☂",
	weathercode.IconRain:              "☔",
	weathercode.IconSnow:              "❄",
	weathercode.IconThunderstorm:      "⚡",
}

// iconGlyph is the terminal stand-in for an icon identifier.
func iconGlyph(icon string) string {
	if glyph, ok := glyphs[icon]; ok {
		return glyph
	}
	return "?"
}
