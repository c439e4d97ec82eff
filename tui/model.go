// Package tui provides the interactive terminal dashboard for sonicapi.
// It is built on the bubbletea/lipgloss stack and renders three tabs:
// Zones, Address Objects, and Access Rules. Data is refreshed every 5
// seconds through the SonicOS API client.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hbonath/sonicapi/sonicos"
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	// titleStyle renders the application title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24")).
			Padding(0, 1)

	// activeTabStyle renders the currently selected tab label.
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24")).
			Padding(0, 2)

	// inactiveTabStyle renders unselected tab labels.
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	// headerCellStyle is used for table column headers.
	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			PaddingRight(1)

	// rowStyle is used for odd-numbered table rows.
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingRight(1)

	// altRowStyle is used for even-numbered table rows (zebra striping).
	altRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236")).
			PaddingRight(1)

	// dimStyle is used for "no data" messages.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	// statusBarStyle renders the bottom status bar.
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(1)

	// errorStyle renders error messages.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true).
			PaddingLeft(1)
)

// ---------------------------------------------------------------------------
// Tab type
// ---------------------------------------------------------------------------

// tab identifies the currently active dashboard tab.
type tab int

const (
	tabZones tab = iota
	tabAddressObjects
	tabAccessRules
	tabCount // sentinel, must stay last
)

// ---------------------------------------------------------------------------
// Tea messages
// ---------------------------------------------------------------------------

// tickMsg is sent every refreshInterval to trigger a data refresh.
type tickMsg time.Time

// dataMsg carries a freshly fetched dataset.
type dataMsg struct {
	zones   []ZoneRow
	objects []AddressObjectRow
	rules   []AccessRuleRow
}

// errMsg carries a fetch error to display in the status bar.
type errMsg error

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

const refreshInterval = 5 * time.Second

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	tabs      []string
	activeTab tab
	zones     []ZoneRow
	objects   []AddressObjectRow
	rules     []AccessRuleRow
	api       sonicos.API
	host      string
	width     int
	height    int
	err       error
	loading   bool
	lastFetch time.Time
}

// New returns a Model that reads from api. host is only displayed in the
// status bar.
func New(api sonicos.API, host string) Model {
	return Model{
		tabs:    []string{"Zones", "Address Objects", "Access Rules"},
		api:     api,
		host:    host,
		loading: true,
	}
}

// Init starts the periodic tick and issues the first data fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), fetchData(m.api))
}

// tick schedules a tickMsg after refreshInterval.
func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update processes messages and returns an updated model plus any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1":
			m.activeTab = tabZones
		case "2":
			m.activeTab = tabAddressObjects
		case "3":
			m.activeTab = tabAccessRules
		case "r":
			// Manual refresh
			m.loading = true
			m.err = nil
			return m, fetchData(m.api)
		}
		return m, nil

	case tickMsg:
		m.loading = true
		m.err = nil
		return m, tea.Batch(tick(), fetchData(m.api))

	case dataMsg:
		m.loading = false
		m.err = nil
		m.zones = msg.zones
		m.objects = msg.objects
		m.rules = msg.rules
		m.lastFetch = time.Now()
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg
		return m, nil
	}

	return m, nil
}

// View renders the entire dashboard to a string.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var sb strings.Builder

	// --- Title bar ---
	title := titleStyle.Render("  SonicOS Dashboard  ")
	sb.WriteString(title)
	sb.WriteString("\n")

	// --- Tab bar ---
	var tabParts []string
	for i, name := range m.tabs {
		label := fmt.Sprintf(" %d: %s ", i+1, name)
		if tab(i) == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabParts, ""))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")

	// --- Content area ---
	contentHeight := m.height - 5 // title(1) + tabs(1) + divider(1) + status(2)
	if contentHeight < 1 {
		contentHeight = 1
	}
	content := m.renderActiveTab()
	content = clipLines(content, contentHeight)
	sb.WriteString(content)
	sb.WriteString("\n")

	// --- Status bar ---
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())

	return sb.String()
}

// renderActiveTab renders the content of the currently selected tab.
func (m Model) renderActiveTab() string {
	w := m.width - 2 // leave a small margin
	switch m.activeTab {
	case tabZones:
		return renderZones(m.zones, w)
	case tabAddressObjects:
		return renderAddressObjects(m.objects, w)
	case tabAccessRules:
		return renderAccessRules(m.rules, w)
	default:
		return ""
	}
}

// renderStatus renders the bottom status bar line.
func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	parts := []string{
		fmt.Sprintf("host: %s", m.host),
	}
	if !m.lastFetch.IsZero() {
		parts = append(parts, fmt.Sprintf("last refresh: %s", m.lastFetch.Format("15:04:05")))
	}
	if m.loading {
		parts = append(parts, "refreshing…")
	}
	parts = append(parts, "q: quit  tab: next tab  r: refresh")

	return statusBarStyle.Render(strings.Join(parts, "  |  "))
}

// clipLines limits the string s to at most maxLines newline-delimited lines.
func clipLines(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

// ---------------------------------------------------------------------------
// Data fetching
// ---------------------------------------------------------------------------

// fetchData reads all three tabs' data through the API client and returns
// a dataMsg (or errMsg on failure).
func fetchData(api sonicos.API) tea.Cmd {
	return func() tea.Msg {
		zones, err := fetchZones(api)
		if err != nil {
			return errMsg(err)
		}
		objects, err := fetchAddressObjects(api)
		if err != nil {
			return errMsg(err)
		}
		rules, err := fetchAccessRules(api)
		if err != nil {
			return errMsg(err)
		}
		return dataMsg{zones: zones, objects: objects, rules: rules}
	}
}

// fetchZones lists the configured zones.
func fetchZones(api sonicos.API) ([]ZoneRow, error) {
	resp, err := api.Zones(sonicos.ZoneOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch zones: %w", err)
	}

	items, _ := resp["zones"].([]any)
	rows := make([]ZoneRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, ZoneRow{
			Name:         str(obj, "name"),
			UUID:         str(obj, "uuid"),
			SecurityType: str(obj, "security_type"),
		})
	}
	return rows, nil
}

// fetchAddressObjects lists the IPv4 address objects.
func fetchAddressObjects(api sonicos.API) ([]AddressObjectRow, error) {
	resp, err := api.AddressObjects(sonicos.AddressObjectOptions{Type: sonicos.TypeIPv4})
	if err != nil {
		return nil, fmt.Errorf("fetch address objects: %w", err)
	}

	items, _ := resp["address_objects"].([]any)
	rows := make([]AddressObjectRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		obj = unwrap(obj)
		rows = append(rows, AddressObjectRow{
			Name:  str(obj, "name"),
			Zone:  str(obj, "zone"),
			Value: addressValue(obj),
		})
	}
	return rows, nil
}

// fetchAccessRules lists the IPv4 access rules.
func fetchAccessRules(api sonicos.API) ([]AccessRuleRow, error) {
	resp, err := api.AccessRules(sonicos.AccessRuleOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch access rules: %w", err)
	}

	items, _ := resp["access_rules"].([]any)
	rows := make([]AccessRuleRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		obj = unwrap(obj)
		rows = append(rows, AccessRuleRow{
			Name:        str(obj, "name"),
			From:        str(obj, "from"),
			To:          str(obj, "to"),
			Action:      str(obj, "action"),
			Source:      ruleEndpoint(obj, "source"),
			Destination: ruleEndpoint(obj, "destination"),
			Service:     serviceName(obj),
		})
	}
	return rows, nil
}
