package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var positionCmd = &cobra.Command{
	Use:   "position <doc> <time_s>",
	Short: "Report the token position occupying a given time",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		ix := openIndex()
		defer ix.Close()

		docIDs, err := parseDocIDs(args[:1])
		if err != nil {
			die("%v", err)
		}
		t, err := strconv.ParseFloat(args[1], 32)
		if err != nil {
			die("invalid time_s %q: %v", args[1], err)
		}

		pos, err := ix.Position(docIDs[0], float32(t))
		if err != nil {
			die("%v", err)
		}
		fmt.Println(int(pos))
	},
}

func init() {
	rootCmd.AddCommand(positionCmd)
}
