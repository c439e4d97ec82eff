package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ZoneRow is a single row in the Zones dashboard table.
type ZoneRow struct {
	Name         string
	UUID         string
	SecurityType string // "trusted", "untrusted", "public", etc.
}

// AddressObjectRow is a single row in the Address Objects dashboard table.
type AddressObjectRow struct {
	Name  string
	Zone  string
	Value string // host IP, subnet/mask, or domain
}

// AccessRuleRow is a single row in the Access Rules dashboard table.
type AccessRuleRow struct {
	Name        string
	From        string
	To          string
	Action      string // "allow", "deny", "discard"
	Source      string
	Destination string
	Service     string
}

// zoneTypeColor returns a lipgloss foreground colour for a zone security type.
func zoneTypeColor(securityType string) lipgloss.Color {
	switch strings.ToLower(securityType) {
	case "trusted":
		return lipgloss.Color("2") // green
	case "public":
		return lipgloss.Color("3") // yellow
	case "untrusted":
		return lipgloss.Color("1") // red
	default:
		return lipgloss.Color("8") // grey
	}
}

// actionColor returns a lipgloss foreground colour for a rule action.
func actionColor(action string) lipgloss.Color {
	switch strings.ToLower(action) {
	case "allow":
		return lipgloss.Color("2") // green
	case "discard":
		return lipgloss.Color("3") // yellow
	case "deny":
		return lipgloss.Color("1") // red
	default:
		return lipgloss.Color("8") // grey
	}
}

// renderZones renders the Zones tab content as a lipgloss-styled table and
// returns it as a string. width constrains the overall column layout.
func renderZones(zones []ZoneRow, width int) string {
	if len(zones) == 0 {
		return dimStyle.Render("  No zones found.")
	}

	colName := colWidth(width, 0.24)
	colUUID := colWidth(width, 0.42)
	colType := colWidth(width, 0.18)

	header := strings.Join([]string{
		headerCellStyle.Width(colName).Render("NAME"),
		headerCellStyle.Width(colUUID).Render("UUID"),
		headerCellStyle.Width(colType).Render("SECURITY TYPE"),
	}, "")

	var rows []string
	rows = append(rows, header)
	for i, z := range zones {
		style := rowStyle
		if i%2 == 0 {
			style = altRowStyle
		}
		typeCell := lipgloss.NewStyle().
			Width(colType).
			Foreground(zoneTypeColor(z.SecurityType)).
			Render(truncate(z.SecurityType, colType-1))

		row := strings.Join([]string{
			style.Width(colName).Render(truncate(z.Name, colName-1)),
			style.Width(colUUID).Render(truncate(z.UUID, colUUID-1)),
			typeCell,
		}, "")
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// renderAddressObjects renders the Address Objects tab content.
func renderAddressObjects(objects []AddressObjectRow, width int) string {
	if len(objects) == 0 {
		return dimStyle.Render("  No address objects found.")
	}

	colName := colWidth(width, 0.32)
	colZone := colWidth(width, 0.16)
	colValue := colWidth(width, 0.36)

	header := strings.Join([]string{
		headerCellStyle.Width(colName).Render("NAME"),
		headerCellStyle.Width(colZone).Render("ZONE"),
		headerCellStyle.Width(colValue).Render("VALUE"),
	}, "")

	var rows []string
	rows = append(rows, header)
	for i, o := range objects {
		style := rowStyle
		if i%2 == 0 {
			style = altRowStyle
		}
		row := strings.Join([]string{
			style.Width(colName).Render(truncate(o.Name, colName-1)),
			style.Width(colZone).Render(truncate(o.Zone, colZone-1)),
			style.Width(colValue).Render(truncate(o.Value, colValue-1)),
		}, "")
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// renderAccessRules renders the Access Rules tab content.
func renderAccessRules(rules []AccessRuleRow, width int) string {
	if len(rules) == 0 {
		return dimStyle.Render("  No access rules found.")
	}

	colName := colWidth(width, 0.22)
	colZones := colWidth(width, 0.14)
	colAction := colWidth(width, 0.10)
	colEnd := colWidth(width, 0.14)
	colService := colWidth(width, 0.14)

	header := strings.Join([]string{
		headerCellStyle.Width(colName).Render("NAME"),
		headerCellStyle.Width(colZones).Render("FROM→TO"),
		headerCellStyle.Width(colAction).Render("ACTION"),
		headerCellStyle.Width(colEnd).Render("SOURCE"),
		headerCellStyle.Width(colEnd).Render("DESTINATION"),
		headerCellStyle.Width(colService).Render("SERVICE"),
	}, "")

	var rows []string
	rows = append(rows, header)
	for i, r := range rules {
		style := rowStyle
		if i%2 == 0 {
			style = altRowStyle
		}
		actionCell := lipgloss.NewStyle().
			Width(colAction).
			Foreground(actionColor(r.Action)).
			Render(truncate(r.Action, colAction-1))

		zones := r.From + "→" + r.To
		row := strings.Join([]string{
			style.Width(colName).Render(truncate(r.Name, colName-1)),
			style.Width(colZones).Render(truncate(zones, colZones-1)),
			actionCell,
			style.Width(colEnd).Render(truncate(r.Source, colEnd-1)),
			style.Width(colEnd).Render(truncate(r.Destination, colEnd-1)),
			style.Width(colService).Render(truncate(r.Service, colService-1)),
		}, "")
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// ---------------------------------------------------------------------------
// Envelope helpers
// ---------------------------------------------------------------------------

// str reads a string field from a decoded JSON object.
func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// unwrap flattens the single-key IP version wrapper around object bodies,
// e.g. {"ipv4": {...}}.
func unwrap(obj map[string]any) map[string]any {
	if len(obj) != 1 {
		return obj
	}
	for _, v := range obj {
		if inner, ok := v.(map[string]any); ok {
			return inner
		}
	}
	return obj
}

// addressValue summarizes an address object body as a single cell.
func addressValue(obj map[string]any) string {
	if host, ok := obj["host"].(map[string]any); ok {
		return str(host, "ip")
	}
	if network, ok := obj["network"].(map[string]any); ok {
		return str(network, "subnet") + "/" + str(network, "mask")
	}
	if v := str(obj, "domain"); v != "" {
		return v
	}
	return str(obj, "address")
}

// ruleEndpoint summarizes the source or destination section of an access
// rule: "any" or the referenced object name.
func ruleEndpoint(obj map[string]any, key string) string {
	section, ok := obj[key].(map[string]any)
	if !ok {
		return ""
	}
	addr, ok := section["address"].(map[string]any)
	if !ok {
		addr = section
	}
	if b, ok := addr["any"].(bool); ok && b {
		return "any"
	}
	return str(addr, "name")
}

// serviceName summarizes the service section of an access rule.
func serviceName(obj map[string]any) string {
	service, ok := obj["service"].(map[string]any)
	if !ok {
		return ""
	}
	if b, ok := service["any"].(bool); ok && b {
		return "any"
	}
	return str(service, "name")
}

// colWidth converts a fractional width into an integer column width, leaving
// a small gutter between columns.
func colWidth(totalWidth int, fraction float64) int {
	w := int(float64(totalWidth) * fraction)
	if w < 8 {
		w = 8
	}
	return w
}

// truncate shortens s to maxLen runes, appending "…" if truncation occurred.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return fmt.Sprintf("%s…", string(runes[:maxLen-1]))
}
