package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scanner-research/captionidx/caption"
)

// checkCmd spot-checks invariant 4 from §8 (unigram_search(t, D) equals
// ngram_search([t], D)) for a caller-supplied token across every
// document, a cheap live sanity check in the spirit of the teacher's
// cindex -list (report index health rather than just open it).
var checkCmd = &cobra.Command{
	Use:   "check <token>",
	Short: "Spot-check that unigram and 1-gram search agree for a token",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ix := openIndex()
		defer ix.Close()

		tokens, err := parseTokenIDs(args)
		if err != nil {
			die("%v", err)
		}

		uni := ix.UnigramSearch(tokens[0], nil)
		ng, err := ix.NgramSearch(tokens, nil)
		if err != nil {
			die("%v", err)
		}
		if !docPostingsEqual(uni, ng) {
			die("unigram/ngram mismatch for token %d", tokens[0])
		}
		fmt.Println(color.GreenString("ok: %d document(s) agree", len(uni)))
	},
}

func docPostingsEqual(a, b []caption.DocPostings) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Document != b[i].Document || len(a[i].Postings) != len(b[i].Postings) {
			return false
		}
		for j := range a[i].Postings {
			if a[i].Postings[j] != b[i].Postings[j] {
				return false
			}
		}
	}
	return true
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
