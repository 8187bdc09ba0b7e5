package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/scanner-research/captionidx/caption"
)

// printDocPostings renders UnigramSearch/NgramSearch output as one
// table per document, mirroring the role tablewriter plays in the
// pack's mcap info/list commands.
func printDocPostings(results []caption.DocPostings) {
	if len(results) == 0 {
		fmt.Println(color.YellowString("no matches"))
		return
	}
	for _, r := range results {
		fmt.Printf("%s %d\n", color.CyanString("document"), r.Document)
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"position", "length", "start_s", "end_s"})
		for _, p := range r.Postings {
			table.Append([]string{
				fmt.Sprintf("%d", p.Position),
				fmt.Sprintf("%d", p.Length),
				fmt.Sprintf("%.3f", p.Start),
				fmt.Sprintf("%.3f", p.End),
			})
		}
		table.Render()
	}
}

func printDocIDs(ids []caption.DocumentId) {
	if len(ids) == 0 {
		fmt.Println(color.YellowString("no matches"))
		return
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"document"})
	for _, id := range ids {
		table.Append([]string{fmt.Sprintf("%d", id)})
	}
	table.Render()
}
