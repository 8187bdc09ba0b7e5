package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scanner-research/captionidx/caption"
)

var metaFile string
var metaEntrySize int

var metaCmd = &cobra.Command{
	Use:   "meta <doc> <position> <n>",
	Short: "Print n opaque metadata records (e.g. part-of-speech tags) starting at position",
	Args:  cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		path := metaFile
		if path == "" {
			path = viper.GetString("meta-file")
		}
		if path == "" {
			die("no metadata file given: pass --meta-file or set CAPIDX_META_FILE")
		}
		m, err := caption.OpenMetadata(path, metaEntrySize)
		if err != nil {
			die("open %s: %v", path, err)
		}
		defer m.Close()

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

		records, err := m.Get(docIDs[0], caption.Position(pos), n)
		if err != nil {
			die("%v", err)
		}
		for _, r := range records {
			fmt.Println(hex.EncodeToString(r))
		}
	},
}

func init() {
	metaCmd.Flags().StringVar(&metaFile, "meta-file", "", "path to the metadata file (env CAPIDX_META_FILE)")
	metaCmd.Flags().IntVar(&metaEntrySize, "entry-size", 1, "byte width of one opaque metadata record")
	_ = viper.BindPFlag("meta-file", metaCmd.Flags().Lookup("meta-file"))
	rootCmd.AddCommand(metaCmd)
}
