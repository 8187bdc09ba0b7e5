package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scanner-research/captionidx/caption"
)

var intervalsCmd = &cobra.Command{
	Use:   "intervals <doc> <start_s> <end_s>",
	Short: "List the caption time intervals overlapping [start_s, end_s]",
	Args:  cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		ix := openIndex()
		defer ix.Close()

		docIDs, err := parseDocIDs(args[:1])
		if err != nil {
			die("%v", err)
		}
		start, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			die("invalid start_s %q: %v", args[1], err)
		}
		end, err := strconv.ParseFloat(args[2], 32)
		if err != nil {
			die("invalid end_s %q: %v", args[2], err)
		}

		postings, err := ix.Intervals(docIDs[0], float32(start), float32(end))
		if err != nil {
			die("%v", err)
		}
		printDocPostings([]caption.DocPostings{{Document: docIDs[0], Postings: postings}})
	},
}

func init() {
	rootCmd.AddCommand(intervalsCmd)
}
