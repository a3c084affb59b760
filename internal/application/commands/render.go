package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"kennel/internal/domain"
)

// WriteList writes one page as an aligned table with the record id first,
// followed by the page position
func WriteList(w io.Writer, res *ListResult, now time.Time) error {
	if res.Total == 0 {
		_, err := fmt.Fprintf(w, "No %s\n", res.Kind)
		return err
	}

	var cols []domain.Column
	for _, c := range res.Columns {
		if c.ID != domain.ActionsColumn {
			cols = append(cols, c)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"ID"}
	for _, c := range cols {
		header = append(header, strings.ToUpper(c.Title))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, r := range res.Rows {
		cells := []string{r.RecordID()}
		for _, c := range cols {
			cells = append(cells, FormatCell(r, c.ID, now))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nPage %d/%d, %d %s\n", res.Page, max(res.TotalPages, 1), res.Total, res.Kind)
	return err
}

// WriteColumns writes a column layout, one column per line in display order
func WriteColumns(w io.Writer, res *ColumnsResult) error {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range res.Columns {
		mark := "[ ]"
		if c.Visible {
			mark = "[x]"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.Position, mark, c.ID, c.Title)
	}
	return tw.Flush()
}
