package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/services"
	"github.com/renato0307/tabrest/internal/theme"
)

const maxTitleWidth = 48

// TabsCmd lists every open tab
type TabsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the tabs command
func (t *TabsCmd) Run(cli *CLI) error {
	tabs, err := cli.Container.Client.Tabs(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list tabs: %w", err)
	}

	if t.Format == "json" {
		return printJSON(tabs)
	}

	if len(tabs) == 0 {
		fmt.Println(theme.MutedStyle.Render("No tabs open"))
		return nil
	}
	fmt.Println(renderTabs(tabs))
	return nil
}

func renderTabs(tabs []services.TabView) string {
	rows := make([][]string, 0, len(tabs))
	for _, tab := range tabs {
		title := tab.Title
		if tab.Suspension == domain.TabStatusSuspended {
			title = domain.ParseSuspendedURL(tab.URL).Title
		}
		rows = append(rows, []string{
			strconv.Itoa(tab.ID),
			strconv.Itoa(tab.WindowID),
			truncate(title, maxTitleWidth),
			string(tab.Suspension),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.MutedStyle).
		Headers("ID", "WINDOW", "TITLE", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.HeaderStyle.Padding(0, 1)
			case col == 3:
				return theme.StatusStyle(tabs[row].Suspension).Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
