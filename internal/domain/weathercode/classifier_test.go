package weathercode

import "testing"

func TestCondition(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "晴天"},
		{1, "大部晴朗"},
		{2, "部分多云"},
		{3, "阴天"},
		{45, "有雾"},
		{48, "有雾"},
		{51, "小雨"},
		{53, "中雨"},
		{55, "大雨"},
		{56, "小雨"},
		{57, "中雨"},
		{61, "小雨"},
		{63, "中雨"},
		{65, "大雨"},
		{66, "小雨"},
		{67, "中雨"},
		{71, "小雪"},
		{73, "中雪"},
		{75, "大雪"},
		{77, "雪粒"},
		{80, "小阵雨"},
		{81, "中阵雨"},
		{82, "强阵雨"},
		{85, "小雪"},
		{86, "中雪"},
		{95, "雷暴"},
		{96, "雹暴"},
		{99, "雹暴"},
		{4, "未知"},
		{42, "未知"},
		{Unknown, "未知"},
		{1000, "未知"},
	}

	for _, tt := range tests {
		if got := Condition(tt.code); got != tt.want {
			t.Errorf("Condition(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		code  int
		isDay bool
		want  string
	}{
		{0, true, IconSunny},
		{0, false, IconClearNight},
		{1, true, IconPartlyCloudyDay},
		{3, true, IconPartlyCloudyDay},
		{2, false, IconPartlyCloudyNight},
		{45, true, IconFog},
		{48, false, IconFog},
		{51, true, IconDrizzle},
		{57, true, IconDrizzle},
		{61, true, IconRain},
		{67, false, IconRain},
		{71, true, IconSnow},
		{77, true, IconSnow},
		{80, true, IconRain},
		{82, true, IconRain},
		{85, true, IconSnow},
		{86, false, IconSnow},
		{95, true, IconThunderstorm},
		{99, true, IconThunderstorm},
		{4, true, IconUnknown},
		{58, true, IconUnknown},
		{Unknown, true, IconUnknown},
	}

	for _, tt := range tests {
		if got := Icon(tt.code, tt.isDay); got != tt.want {
			t.Errorf("Icon(%d, %v) = %q, want %q", tt.code, tt.isDay, got, tt.want)
		}
	}
}

func TestIconsCoverEveryCode(t *testing.T) {
	for code := -1; code <= 100; code++ {
		for _, isDay := range []bool{true, false} {
			if icon := Icon(code, isDay); !IsIcon(icon) {
				t.Errorf("Icon(%d, %v) = %q is not listed by Icons()", code, isDay, icon)
			}
		}
	}
}
