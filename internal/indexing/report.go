package indexing

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

func columnNames(rel RelationDescriptor, cols []int) string {
	if len(cols) == 0 {
		return ""
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = rel.ArgName(c)
	}
	return strings.Join(names, " ") + " "
}

// Print writes the fixed-format diagnostic report specified for the
// analysis: not a machine interface, but byte-for-byte the shape downstream
// tooling and golden-file tests key on.
func Print(w io.Writer, a *IndexAnalysis) {
	fmt.Fprintln(w, "------ Auto-Index-Generation Report -------")
	for _, name := range a.RelationNames() {
		set, _ := a.IndexSetFor(name)
		rel := set.Relation()

		fmt.Fprintf(w, "Relation %s\n", name)

		searches := set.Searches()
		fmt.Fprintf(w, "\tNumber of Search Patterns: %d\n", len(searches))
		for _, mask := range searches {
			fmt.Fprintf(w, "\t\t%s\n", columnNames(rel, mask.Bits()))
		}

		orders := set.Orders()
		fmt.Fprintf(w, "\tNumber of Indexes: %d\n", len(orders))
		for _, order := range orders {
			fmt.Fprintf(w, "\t\t%s\n", columnNames(rel, []int(order)))
		}
	}
	fmt.Fprintln(w, "------ End of Auto-Index-Generation Report -------")
}

// RenderTable writes an opt-in pretty-printed rendering of the same report
// data as a markdown table, one per relation: a supplement to the fixed
// plain-text Print format for interactive CLI use, not a replacement for it.
func RenderTable(w io.Writer, a *IndexAnalysis) {
	for _, name := range a.RelationNames() {
		set, _ := a.IndexSetFor(name)
		rel := set.Relation()

		fmt.Fprintf(w, "Relation %s\n", name)

		table := tablewriter.NewTable(w,
			tablewriter.WithRenderer(renderer.NewMarkdown()),
			tablewriter.WithAlignment([]tw.Align{tw.AlignLeft, tw.AlignLeft}),
			tablewriter.WithHeaderAutoFormat(tw.Off),
		)
		table.Header([]string{"Search Patterns", "Chosen Orders"})

		searches := set.Searches()
		orders := set.Orders()
		rows := len(searches)
		if len(orders) > rows {
			rows = len(orders)
		}
		for i := 0; i < rows; i++ {
			var s, o string
			if i < len(searches) {
				s = strings.TrimSpace(columnNames(rel, searches[i].Bits()))
			}
			if i < len(orders) {
				o = strings.TrimSpace(columnNames(rel, []int(orders[i])))
			}
			table.Append([]string{s, o})
		}
		table.Render()
		fmt.Fprintln(w)
	}
}
