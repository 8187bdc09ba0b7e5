package cmd

import (
	"github.com/spf13/cobra"
)

var unigramDocs []string
var unigramContainsOnly bool

var unigramCmd = &cobra.Command{
	Use:   "unigram <token>",
	Short: "Search for every posting of a single token",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ix := openIndex()
		defer ix.Close()

		tokens, err := parseTokenIDs(args)
		if err != nil {
			die("%v", err)
		}
		docIDs, err := parseDocIDs(unigramDocs)
		if err != nil {
			die("%v", err)
		}

		if unigramContainsOnly {
			printDocIDs(ix.UnigramContains(tokens[0], docIDs))
			return
		}
		printDocPostings(ix.UnigramSearch(tokens[0], docIDs))
	},
}

func init() {
	unigramCmd.Flags().StringSliceVar(&unigramDocs, "docs", nil, "restrict to these document ids (default: all documents)")
	unigramCmd.Flags().BoolVar(&unigramContainsOnly, "contains", false, "report only which documents contain the token")
	rootCmd.AddCommand(unigramCmd)
}
