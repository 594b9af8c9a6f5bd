// Package icon draws the weather icon set as PNG images.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/Ukiyograin/YourWeather/internal/domain/weathercode"
)

const (
	MinSize     = 16
	MaxSize     = 256
	DefaultSize = 64

	// icons are laid out on a canvas x canvas grid and scaled to the master size
	canvas = 100.0
)

var (
	ErrUnknownIcon = errors.New("unknown icon")
	ErrInvalidSize = fmt.Errorf("icon size must be between %d and %d", MinSize, MaxSize)
)

// Theme holds the colors of one icon.
type Theme struct {
	Primary   string
	Secondary string
	Accent    string
}

var (
	dayTheme     = Theme{Primary: "#FF9800", Secondary: "#FFB74D", Accent: "#FF9800"}
	nightTheme   = Theme{Primary: "#3F51B5", Secondary: "#5C6BC0", Accent: "#7986CB"}
	rainTheme    = Theme{Primary: "#90A4AE", Secondary: "#64B5F6", Accent: "#1976D2"}
	snowTheme    = Theme{Primary: "#90A4AE", Secondary: "#E0E0E0", Accent: "#9E9E9E"}
	stormTheme   = Theme{Primary: "#607D8B", Secondary: "#FFC107", Accent: "#FFA000"}
	defaultTheme = Theme{Primary: "#2196F3", Secondary: "#03A9F4", Accent: "#00BCD4"}
)

type painter func(dc *gg.Context, theme Theme)

type definition struct {
	theme Theme
	paint painter
}

// Renderer rasterizes icons. It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	definitions map[string]definition
}

func NewRenderer() *Renderer {
	return &Renderer{definitions: map[string]definition{
		weathercode.IconSunny:             {dayTheme, paintSunny},
		weathercode.IconClearNight:        {nightTheme, paintClearNight},
		weathercode.IconPartlyCloudyDay:   {dayTheme, paintPartlyCloudyDay},
		weathercode.IconPartlyCloudyNight: {nightTheme, paintPartlyCloudyNight},
		weathercode.IconFog:               {snowTheme, paintFog},
		weathercode.IconDrizzle:           {rainTheme, paintDrizzle},
		weathercode.IconRain:              {rainTheme, paintRain},
		weathercode.IconSnow:              {snowTheme, paintSnow},
		weathercode.IconThunderstorm:      {stormTheme, paintThunderstorm},
		weathercode.IconUnknown:           {defaultTheme, paintUnknown},
	}}
}

// Render draws name as a size x size RGBA image.
func (r *Renderer) Render(name string, size int) (image.Image, error) {
	def, ok := r.definitions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, name)
	}
	if size < MinSize || size > MaxSize {
		return nil, ErrInvalidSize
	}

	dc := gg.NewContext(MaxSize, MaxSize)
	dc.Scale(MaxSize/canvas, MaxSize/canvas)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	def.paint(dc, def.theme)

	master := dc.Image()
	if size == MaxSize {
		return master, nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Rect, master, master.Bounds(), draw.Over, nil)
	return scaled, nil
}

// RenderPNG writes name as a PNG of the given size to w.
func (r *Renderer) RenderPNG(w io.Writer, name string, size int) error {
	img, err := r.Render(name, size)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func paintSunny(dc *gg.Context, theme Theme) {
	paintSun(dc, 50, 50, 20, theme)
}

func paintClearNight(dc *gg.Context, theme Theme) {
	paintMoon(dc, 50, 50, 28, theme)
}

func paintPartlyCloudyDay(dc *gg.Context, theme Theme) {
	paintSun(dc, 36, 36, 14, theme)
	paintCloud(dc, 56, 62, "#B0BEC5")
}

func paintPartlyCloudyNight(dc *gg.Context, theme Theme) {
	paintMoon(dc, 36, 36, 18, theme)
	paintCloud(dc, 56, 62, "#B0BEC5")
}

func paintFog(dc *gg.Context, theme Theme) {
	dc.SetHexColor(theme.Accent)
	dc.SetLineWidth(6)
	for i, y := range []float64{38, 52, 66} {
		inset := float64(i%2) * 8
		dc.DrawLine(18+inset, y, 82-inset, y)
		dc.Stroke()
	}
}

func paintDrizzle(dc *gg.Context, theme Theme) {
	paintCloud(dc, 50, 44, theme.Primary)
	dc.SetHexColor(theme.Accent)
	dc.SetLineWidth(3)
	for _, x := range []float64{36, 50, 64} {
		dc.DrawLine(x, 70, x-2, 76)
		dc.Stroke()
	}
}

func paintRain(dc *gg.Context, theme Theme) {
	paintCloud(dc, 50, 44, theme.Primary)
	dc.SetHexColor(theme.Accent)
	dc.SetLineWidth(4)
	for _, x := range []float64{36, 50, 64} {
		dc.DrawLine(x, 68, x-5, 86)
		dc.Stroke()
	}
}

func paintSnow(dc *gg.Context, theme Theme) {
	paintCloud(dc, 50, 44, theme.Primary)
	dc.SetHexColor(theme.Accent)
	dc.SetLineWidth(2.5)
	for _, x := range []float64{34, 50, 66} {
		paintFlake(dc, x, 78, 7)
	}
}

func paintThunderstorm(dc *gg.Context, theme Theme) {
	paintCloud(dc, 50, 40, theme.Primary)
	dc.SetHexColor(theme.Secondary)
	dc.MoveTo(54, 56)
	dc.LineTo(40, 76)
	dc.LineTo(50, 76)
	dc.LineTo(44, 94)
	dc.LineTo(62, 70)
	dc.LineTo(52, 70)
	dc.LineTo(58, 56)
	dc.ClosePath()
	dc.Fill()
}

func paintUnknown(dc *gg.Context, theme Theme) {
	dc.SetHexColor(theme.Primary)
	dc.SetLineWidth(5)
	dc.DrawCircle(50, 50, 32)
	dc.Stroke()

	dc.SetHexColor(theme.Accent)
	dc.NewSubPath()
	dc.DrawArc(50, 40, 10, math.Pi, 2.5*math.Pi)
	dc.LineTo(50, 56)
	dc.Stroke()
	dc.DrawCircle(50, 66, 3.5)
	dc.Fill()
}

func paintSun(dc *gg.Context, x, y, radius float64, theme Theme) {
	dc.SetHexColor(theme.Secondary)
	dc.SetLineWidth(radius / 5)
	for i := 0; i < 8; i++ {
		angle := gg.Radians(float64(i) * 45)
		inner, outer := radius*1.35, radius*1.75
		dc.DrawLine(x+inner*math.Cos(angle), y+inner*math.Sin(angle), x+outer*math.Cos(angle), y+outer*math.Sin(angle))
		dc.Stroke()
	}

	dc.SetHexColor(theme.Primary)
	dc.DrawCircle(x, y, radius)
	dc.Fill()
}

// paintMoon fills a crescent by masking a disc with an offset disc.
func paintMoon(dc *gg.Context, x, y, radius float64, theme Theme) {
	dc.Push()
	dc.DrawCircle(x+radius*0.45, y-radius*0.35, radius*0.85)
	dc.Clip()
	dc.InvertMask()

	dc.SetHexColor(theme.Secondary)
	dc.DrawCircle(x, y, radius)
	dc.Fill()
	dc.ResetClip()
	dc.Pop()
}

func paintCloud(dc *gg.Context, x, y float64, color string) {
	dc.SetHexColor(color)
	dc.DrawCircle(x-16, y+2, 12)
	dc.DrawCircle(x, y-8, 17)
	dc.DrawCircle(x+17, y+2, 12)
	dc.DrawRoundedRectangle(x-28, y, 57, 14, 7)
	dc.Fill()
}

func paintFlake(dc *gg.Context, x, y, radius float64) {
	for i := 0; i < 3; i++ {
		angle := gg.Radians(float64(i)*60 + 90)
		dx, dy := radius*math.Cos(angle), radius*math.Sin(angle)
		dc.DrawLine(x-dx, y-dy, x+dx, y+dy)
		dc.Stroke()
	}
}
