package cmd

import (
	"sharedprint/core/reconcile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderDetails lists every added and weeded identifier.
func renderDetails(report *reconcile.Report) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Status", "Bib Record Number"})

	for _, id := range report.Added {
		tw.AppendRow(table.Row{"added", id})
	}
	for _, id := range report.Weeded {
		tw.AppendRow(table.Row{"weeded", id})
	}
	tw.AppendFooter(table.Row{"total", len(report.Added) + len(report.Weeded)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
