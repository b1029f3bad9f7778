package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kasuboski/moviez/pkg/movies"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeFilms prints films as a table
func writeFilms(w io.Writer, films []movies.FilmSummary) error {
	if outputJSON {
		return writeJSON(w, films)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "YEAR", "RATING", "CATEGORY").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, f := range films {
		t.Row(strconv.Itoa(f.ID), f.Title, f.Year(), f.Rating(), f.Category.Label())
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
