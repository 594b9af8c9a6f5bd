// Package weathercode maps WMO weather interpretation codes to display labels and icon identifiers.
package weathercode

// Unknown is the code used when the upstream reports no weather code.
const Unknown = -1

// Icon identifiers.
const (
	IconSunny             = "sunny"
	IconClearNight        = "clear-night"
	IconPartlyCloudyDay   = "partly-cloudy-day"
	IconPartlyCloudyNight = "partly-cloudy-night"
	IconFog               = "fog"
	IconDrizzle           = "drizzle"
	IconRain              = "rain"
	IconSnow              = "snow"
	IconThunderstorm      = "thunderstorm"
	IconUnknown           = "unknown"
)

const unknownLabel = "未知"

var labels = map[int]string{
	0:  "晴天",
	1:  "大部晴朗",
	2:  "部分多云",
	3:  "阴天",
	45: "有雾",
	48: "有雾",
	51: "小雨",
	53: "中雨",
	55: "大雨",
	56: "小雨",
	57: "中雨",
	61: "小雨",
	63: "中雨",
	65: "大雨",
	66: "小雨",
	67: "中雨",
	71: "小雪",
	73: "中雪",
	75: "大雪",
	77: "雪粒",
	80: "小阵雨",
	81: "中阵雨",
	82: "强阵雨",
	85: "小雪",
	86: "中雪",
	95: "雷暴",
	96: "雹暴",
	99: "雹暴",
}

// Condition returns the zh label for code, or 未知 for unlisted codes.
func Condition(code int) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return unknownLabel
}

// Icon returns the icon identifier for code. isDay only affects clear and partly cloudy skies.
func Icon(code int, isDay bool) string {
	switch {
	case code == 0:
		if isDay {
			return IconSunny
		}
		return IconClearNight
	case code >= 1 && code <= 3:
		if isDay {
			return IconPartlyCloudyDay
		}
		return IconPartlyCloudyNight
	case code == 45 || code == 48:
		return IconFog
	case code >= 51 && code <= 57:
		return IconDrizzle
	case code >= 61 && code <= 67:
		return IconRain
	case code >= 71 && code <= 77:
		return IconSnow
	case code >= 80 && code <= 82:
		return IconRain
	case code >= 85 && code <= 86:
		return IconSnow
	case code >= 95 && code <= 99:
		return IconThunderstorm
	default:
		return IconUnknown
	}
}

// Icons lists every identifier Icon can return.
func Icons() []string {
	return []string{
		IconSunny,
		IconClearNight,
		IconPartlyCloudyDay,
		IconPartlyCloudyNight,
		IconFog,
		IconDrizzle,
		IconRain,
		IconSnow,
		IconThunderstorm,
		IconUnknown,
	}
}

// IsIcon reports whether name is a known icon identifier.
func IsIcon(name string) bool {
	for _, icon := range Icons() {
		if icon == name {
			return true
		}
	}
	return false
}
