// Package list renders instance, version, loader and account listings.
package list

import (
	"fmt"
	"strconv"

	"github.com/bnema/mcli/internal/application"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Listing is a titled table.
type Listing struct {
	Title   string
	Noun    string
	Columns []string
	Rows    [][]string
	Empty   string
}

func Instances(instances []application.InstanceSummary) Listing {
	rows := make([][]string, 0, len(instances))
	for _, instance := range instances {
		if instance.Err != nil {
			rows = append(rows, []string{instance.Name, "?", "?", "unreadable state"})
			continue
		}
		rows = append(rows, []string{instance.Name, string(instance.Scenario), instance.GameVersion, dash(instance.LoaderVersion)})
	}
	return Listing{
		Title:   "Instances",
		Noun:    "instances",
		Columns: []string{"NAME", "SCENARIO", "VERSION", "LOADER"},
		Rows:    rows,
		Empty:   "No instances installed.",
	}
}

func Versions(versions []domain.VersionRecord) Listing {
	rows := make([][]string, 0, len(versions))
	for _, version := range versions {
		rows = append(rows, []string{version.ID, version.Kind, releaseDate(version.ReleaseTime)})
	}
	return Listing{
		Title:   "Game versions",
		Noun:    "versions",
		Columns: []string{"VERSION", "TYPE", "RELEASED"},
		Rows:    rows,
		Empty:   "No versions published.",
	}
}

func Loaders(loaders []domain.LoaderVersion) Listing {
	rows := make([][]string, 0, len(loaders))
	for _, loader := range loaders {
		rows = append(rows, []string{loader.Version, strconv.FormatBool(loader.Stable)})
	}
	return Listing{
		Title:   "Fabric loader versions",
		Noun:    "loaders",
		Columns: []string{"VERSION", "STABLE"},
		Rows:    rows,
		Empty:   "No loader versions published.",
	}
}

func Accounts(accounts []ports.StoredAccount) Listing {
	rows := make([][]string, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, []string{account.Name, account.UUID})
	}
	return Listing{
		Title:   "Accounts",
		Noun:    "accounts",
		Columns: []string{"NAME", "UUID"},
		Rows:    rows,
		Empty:   "No accounts. Run `mcli login` to add one.",
	}
}

func renderView(listing Listing, s styles) string {
	lines := []string{
		s.title.Render(listing.Title),
		s.header.Render(fmt.Sprintf("%s: %d", listing.Noun, len(listing.Rows))),
	}

	if len(listing.Rows) == 0 {
		lines = append(lines, s.empty.Render(listing.Empty))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, renderTable(listing))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTable(listing Listing) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false

	header := make(table.Row, 0, len(listing.Columns))
	for _, column := range listing.Columns {
		header = append(header, column)
	}
	tw.AppendHeader(header)

	for _, row := range listing.Rows {
		cells := make(table.Row, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		tw.AppendRow(cells)
	}

	return tw.Render()
}

// releaseDate keeps the date part of an RFC 3339 timestamp.
func releaseDate(timestamp string) string {
	if len(timestamp) >= len("2006-01-02") {
		return timestamp[:len("2006-01-02")]
	}
	return dash(timestamp)
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
