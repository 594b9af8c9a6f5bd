package controller

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Ukiyograin/YourWeather/internal/infra/icon"
	"github.com/Ukiyograin/YourWeather/pkg/msg"
	"github.com/Ukiyograin/YourWeather/pkg/util/numberutils"
)

type IconController struct {
	api         *echo.Group
	renderer    *icon.Renderer
	defaultSize int
}

func NewIconController(api *echo.Group, renderer *icon.Renderer, defaultSize int) *IconController {
	if defaultSize == 0 {
		defaultSize = icon.DefaultSize
	}
	return &IconController{api: api, renderer: renderer, defaultSize: defaultSize}
}

// InitIconRoutes initializes icon routes
func (controller *IconController) InitIconRoutes() {
	controller.api.GET("/icon/:name", controller.GetIcon)
}

// GetIcon godoc
// @Summary Render a weather icon
// @Description Render the named icon as a square PNG. A trailing .png is accepted.
// @Tags icon
// @Produce png
// @Param name path string true "Icon identifier, e.g. partly-cloudy-day"
// @Param size query int false "Edge length in pixels (16-256)" default(64)
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} map[string]string "Invalid size"
// @Failure 404 {object} map[string]string "Unknown icon"
// @Router /icon/{name} [get]
func (controller *IconController) GetIcon(c echo.Context) error {
	name := strings.TrimSuffix(c.Param("name"), ".png")
	size := numberutils.ToIntWithDefault(c.QueryParam("size"), controller.defaultSize)

	var buf bytes.Buffer
	err := controller.renderer.RenderPNG(&buf, name, size)
	switch {
	case errors.Is(err, icon.ErrUnknownIcon):
		return errorJSON(c, http.StatusNotFound, msg.GetMessage("weather.http.unknown-icon", name))
	case errors.Is(err, icon.ErrInvalidSize):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case err != nil:
		return errorJSON(c, http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
