package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
)

// placeItem wraps a Place for use in a list
type placeItem struct {
	place entity.Place
}

// FilterValue implements list.Item
func (p placeItem) FilterValue() string {
	return p.place.DisplayName()
}

// Title implements list.DefaultItem
func (p placeItem) Title() string {
	return p.place.DisplayName()
}

// Description implements list.DefaultItem
func (p placeItem) Description() string {
	return fmt.Sprintf("%s  %s", p.place.Coordinate, p.place.Timezone)
}

func createPlaceList(places []entity.Place, width, height int) list.Model {
	items := make([]list.Item, len(places))
	for i, place := range places {
		items[i] = placeItem{place: place}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "选择城市"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	return l
}
