package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/scanner-research/captionidx/caption"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <doc> <position> <n>",
	Short: "Print the n token ids starting at position (clipped to document length)",
	Args:  cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		ix := openIndex()
		defer ix.Close()

		docIDs, err := parseDocIDs(args[:1])
		if err != nil {
			die("%v", err)
		}
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			die("invalid position %q: %v", args[1], err)
		}
		n, err := strconv.Atoi(args[2])
		if err != nil {
			die("invalid n %q: %v", args[2], err)
		}

		toks, err := ix.Tokens(docIDs[0], caption.Position(pos), n)
		if err != nil {
			die("%v", err)
		}
		for _, t := range toks {
			fmt.Println(uint32(t))
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
