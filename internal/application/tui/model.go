// Package tui is the terminal front end: search a place, show its forecast,
// refresh it or jump to the configured current location.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
	"github.com/Ukiyograin/YourWeather/pkg/msg"
)

// AppState represents the current screen
type AppState int

const (
	StateSearch AppState = iota
	StatePlaceList
	StateLoading
	StateDisplay
)

const (
	DefaultCity    = "北京"
	DefaultDays    = 7
	DefaultTimeout = 15 * time.Second

	hourlyRows = 12
)

// Config holds the startup city and the fixed current location.
type Config struct {
	DefaultCity         string
	Days                int
	CurrentLocationName string
	CurrentLocation     entity.Coordinate
	Timeout             time.Duration
}

// shownPlace is what the refresh key re-fetches.
type shownPlace struct {
	name       string
	country    string
	coordinate entity.Coordinate
}

// Model is the bubbletea model of the application
type Model struct {
	useCase weather.UseCase
	config  Config

	state     AppState
	prevState AppState

	searchInput textinput.Model
	placeList   list.Model
	spinner     spinner.Model

	snapshot *entity.WeatherSnapshot
	shown    *shownPlace

	status    string
	statusErr bool

	width  int
	height int
}

// NewModel creates the model; zero config fields take their defaults.
func NewModel(useCase weather.UseCase, config Config) Model {
	if config.DefaultCity == "" {
		config.DefaultCity = DefaultCity
	}
	if config.Days <= 0 {
		config.Days = DefaultDays
	}
	if config.CurrentLocationName == "" {
		config.CurrentLocationName = weather.DefaultCurrentLocationName
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	ti := textinput.New()
	ti.Placeholder = "输入城市名称，例如 上海"
	ti.CharLimit = 100
	ti.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		useCase:     useCase,
		config:      config,
		state:       StateLoading,
		prevState:   StateSearch,
		searchInput: ti,
		spinner:     s,
		status:      msg.GetMessage("tui.loading", config.DefaultCity),
	}
}

// Init starts loading the default city
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadCity(m.useCase, m.config.Timeout, m.config.DefaultCity, m.config.Days),
	)
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		if m.state == StatePlaceList {
			m.placeList.SetSize(message.Width-4, message.Height-6)
		}
		return m, nil

	case snapshotLoadedMsg:
		return m.handleSnapshot(message), nil

	case placesFoundMsg:
		return m.handlePlaces(message), nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case tea.KeyMsg:
		if message.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(message)
	}

	return m.updateFocused(message)
}

func (m Model) handleSnapshot(message snapshotLoadedMsg) Model {
	if message.err != nil {
		m.state = m.prevState
		m.setError(message.label, message.err)
		if m.state == StateSearch {
			m.searchInput.Focus()
		}
		return m
	}

	m.snapshot = message.snapshot
	m.shown = &shownPlace{
		name:       message.snapshot.City,
		country:    message.snapshot.Country,
		coordinate: message.snapshot.Coordinate,
	}
	m.state = StateDisplay
	m.searchInput.Blur()
	m.setStatus(msg.GetMessage("tui.loaded", message.snapshot.City))
	return m
}

func (m Model) handlePlaces(message placesFoundMsg) Model {
	if message.err != nil {
		m.state = StateSearch
		m.searchInput.Focus()
		m.setError(message.query, message.err)
		return m
	}
	if len(message.places) == 0 {
		m.state = StateSearch
		m.searchInput.Focus()
		m.status = msg.GetMessage("tui.no-results", message.query)
		m.statusErr = true
		return m
	}

	m.placeList = createPlaceList(message.places, m.listWidth(), m.listHeight())
	m.state = StatePlaceList
	m.status = ""
	m.statusErr = false
	return m
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateSearch:
		switch key.String() {
		case "enter":
			query := strings.TrimSpace(m.searchInput.Value())
			if query == "" {
				return m, nil
			}
			m.status = msg.GetMessage("tui.searching", query)
			m.statusErr = false
			return m.startLoading(StateSearch, searchPlaces(m.useCase, m.config.Timeout, query))
		case "esc":
			if m.snapshot != nil {
				m.state = StateDisplay
				m.searchInput.Blur()
			}
			return m, nil
		}

	case StatePlaceList:
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "esc", "s":
			return m.enterSearch()
		case "enter":
			item, ok := m.placeList.SelectedItem().(placeItem)
			if !ok {
				return m, nil
			}
			place := item.place
			m.status = msg.GetMessage("tui.loading", place.Name)
			m.statusErr = false
			return m.startLoading(StatePlaceList, loadCoordinate(m.useCase, m.config.Timeout, place.Name, place.Country, place.Coordinate, m.config.Days))
		}

	case StateLoading:
		if key.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case StateDisplay:
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "s":
			return m.enterSearch()
		case "r":
			if m.shown == nil {
				return m, nil
			}
			m.status = msg.GetMessage("tui.loading", m.shown.name)
			m.statusErr = false
			return m.startLoading(StateDisplay, loadCoordinate(m.useCase, m.config.Timeout, m.shown.name, m.shown.country, m.shown.coordinate, m.config.Days))
		case "l":
			name := m.config.CurrentLocationName
			m.status = msg.GetMessage("tui.loading", name)
			m.statusErr = false
			return m.startLoading(StateDisplay, loadCoordinate(m.useCase, m.config.Timeout, name, "", m.config.CurrentLocation, m.config.Days))
		}
		return m, nil
	}

	return m.updateFocused(key)
}

// updateFocused forwards message to the component owning the current screen.
func (m Model) updateFocused(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(message)
	case StatePlaceList:
		m.placeList, cmd = m.placeList.Update(message)
	}
	return m, cmd
}

func (m Model) enterSearch() (tea.Model, tea.Cmd) {
	m.state = StateSearch
	m.searchInput.SetValue("")
	return m, m.searchInput.Focus()
}

// startLoading shows the spinner until cmd reports back; failures return to fallback.
func (m Model) startLoading(fallback AppState, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if fallback == StateDisplay && m.snapshot == nil {
		fallback = StateSearch
	}
	m.prevState = fallback
	m.state = StateLoading
	m.searchInput.Blur()
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(label string, err error) {
	if errors.Is(err, weather.ErrCityNotFound) {
		m.status = msg.GetMessage("tui.no-results", label)
	} else {
		m.status = msg.GetMessage("tui.failed", err)
	}
	m.statusErr = true
}

func (m Model) listWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 4
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return 20
	}
	return m.height - 6
}

// View renders the current screen
func (m Model) View() string {
	var body string
	switch m.state {
	case StateSearch:
		body = m.viewSearch()
	case StatePlaceList:
		body = m.placeList.View()
	case StateLoading:
		body = fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render(m.status))
	case StateDisplay:
		body = m.viewDisplay()
	}

	sections := []string{titleStyle.Render("YourWeather"), "", body}
	if m.state != StateLoading && m.status != "" {
		sections = append(sections, "", m.viewStatus())
	}
	sections = append(sections, helpStyle.Render(m.helpText()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewSearch() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		mutedStyle.Render("Open-Meteo 天气查询"),
		searchBoxStyle.Render(m.searchInput.View()),
	)
}

func (m Model) viewStatus() string {
	if m.statusErr {
		return statusErrorStyle.Render("✗ " + m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) helpText() string {
	switch m.state {
	case StateSearch:
		return "Enter: 搜索 • Esc: 返回 • Ctrl+C: 退出"
	case StatePlaceList:
		return "↑/↓: 选择 • Enter: 查看 • S: 重新搜索 • Q: 退出"
	case StateDisplay:
		return "R: 刷新 • L: 当前位置 • S: 搜索 • Q: 退出"
	}
	return "Q: 退出"
}

func (m Model) viewDisplay() string {
	if m.snapshot == nil {
		return ""
	}
	current := paneStyle.Render(m.viewCurrent())
	hourly := paneStyle.Render(m.viewHourly())
	daily := paneStyle.Render(m.viewDaily())
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, current, hourly),
		daily,
	)
}

func (m Model) viewCurrent() string {
	s := m.snapshot
	c := s.Current

	place := s.City
	if s.Country != "" {
		place += ", " + s.Country
	}

	lines := []string{
		sectionHeaderStyle.Render(place),
		"",
		fmt.Sprintf("%s %s  %s", iconGlyph(c.Icon), temperatureStyle.Render(formatTemp(c.Temperature)), valueStyle.Render(c.Condition)),
		field("体感", formatTemp(c.ApparentTemperature)),
		field("湿度", fmt.Sprintf("%d%%", c.Humidity)),
		field("风速", fmt.Sprintf("%.1f km/h %s", c.WindSpeed, windDirection(c.WindDirection))),
		field("气压", fmt.Sprintf("%.0f hPa", c.Pressure)),
		field("降水", fmt.Sprintf("%.1f mm", c.Precipitation)),
		field("云量", fmt.Sprintf("%d%%", c.CloudCover)),
		"",
		mutedStyle.Render("更新于 " + s.CreatedAt.Format("2006-01-02 15:04")),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHourly() string {
	lines := []string{sectionHeaderStyle.Render("逐小时"), ""}
	if len(m.snapshot.Hourly) == 0 {
		return strings.Join(append(lines, mutedStyle.Render("暂无数据")), "\n")
	}
	for i, point := range m.snapshot.Hourly {
		if i == hourlyRows {
			break
		}
		lines = append(lines, fmt.Sprintf("%s  %s %6s  %3d%%",
			labelStyle.Render(point.Time.Format("15:04")),
			iconGlyph(point.Icon),
			formatTemp(point.Temperature),
			point.PrecipitationProbability,
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDaily() string {
	lines := []string{sectionHeaderStyle.Render("每日预报"), ""}
	if len(m.snapshot.Daily) == 0 {
		return strings.Join(append(lines, mutedStyle.Render("暂无数据")), "\n")
	}
	for _, day := range m.snapshot.Daily {
		lines = append(lines, fmt.Sprintf("%s  %s %-4s %6s / %-6s  %5.1f mm  ☀ %s - %s",
			labelStyle.Render(day.Date.Format("01-02 Mon")),
			iconGlyph(day.Icon),
			day.Condition,
			formatTemp(day.MinTemperature),
			formatTemp(day.MaxTemperature),
			day.PrecipitationSum,
			day.Sunrise.Format("15:04"),
			day.Sunset.Format("15:04"),
		))
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(value))
}

func formatTemp(celsius float64) string {
	return fmt.Sprintf("%.1f°C", celsius)
}

var compassPoints = []string{"北", "东北", "东", "东南", "南", "西南", "西", "西北"}

// windDirection names the compass sector the wind blows from.
func windDirection(degrees float64) string {
	sector := int((degrees+22.5)/45) % len(compassPoints)
	if sector < 0 {
		sector += len(compassPoints)
	}
	return compassPoints[sector]
}
