package cmd

import (
	"github.com/spf13/cobra"
)

var ngramDocs []string
var ngramContainsOnly bool

var ngramCmd = &cobra.Command{
	Use:   "ngram <token> [token...]",
	Short: "Search for a contiguous sequence of tokens",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ix := openIndex()
		defer ix.Close()

		tokens, err := parseTokenIDs(args)
		if err != nil {
			die("%v", err)
		}
		docIDs, err := parseDocIDs(ngramDocs)
		if err != nil {
			die("%v", err)
		}

		if ngramContainsOnly {
			ids, err := ix.NgramContains(tokens, docIDs)
			if err != nil {
				die("%v", err)
			}
			printDocIDs(ids)
			return
		}
		results, err := ix.NgramSearch(tokens, docIDs)
		if err != nil {
			die("%v", err)
		}
		printDocPostings(results)
	},
}

func init() {
	ngramCmd.Flags().StringSliceVar(&ngramDocs, "docs", nil, "restrict to these document ids (default: all documents)")
	ngramCmd.Flags().BoolVar(&ngramContainsOnly, "contains", false, "report only which documents contain the sequence")
	rootCmd.AddCommand(ngramCmd)
}
