package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lixenwraith/shapecraft/inventory"
)

var (
	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(0, 1)

	styleCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	styleResult = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1)

	styleBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// recipeTable renders the recipe list with one row per recipe
func recipeTable(recipes []inventory.Recipe) string {
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			r.Ingredients.String(),
			strconv.Itoa(r.Ingredients.Total()),
			r.Result.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Ingredients", "Items", "Result").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 2:
				return styleResult
			default:
				return styleCell
			}
		})
	return t.Render()
}

func printRecipes(w io.Writer, recipes []inventory.Recipe) {
	fmt.Fprintln(w, recipeTable(recipes))
}
