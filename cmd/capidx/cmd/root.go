package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scanner-research/captionidx/caption"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "capidx",
	Short: "Query a time-aligned caption index",
	Long: `capidx opens a caption index built in the §6.1 binary format and runs
the read-only lookups described by the caption package: unigram and
n-gram search and containment, position/time round-trips, raw token
and metadata slices.`,
}

// Execute runs the root command. An error from the command tree is
// printed by die, which exits the process, rather than being returned
// to main.
func Execute() {
	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		die("%v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.capidx.yaml)")

	rootCmd.PersistentFlags().String("index", "", "path to the caption index file (env CAPIDX_INDEX)")
	rootCmd.PersistentFlags().Int("datum-size", 2, "byte width of token id / position fields (env CAPIDX_DATUM_SIZE)")
	rootCmd.PersistentFlags().Int("start-time-size", 2, "byte width of the stored start_ms field (env CAPIDX_START_TIME_SIZE)")
	rootCmd.PersistentFlags().Int("end-time-size", 2, "byte width of the stored end_delta_ms field (env CAPIDX_END_TIME_SIZE)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable per-query debug logging")

	for _, name := range []string{"index", "datum-size", "start-time-size", "end-time-size", "debug"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".capidx")
		}
	}
	viper.SetEnvPrefix("CAPIDX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func die(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.RedString(format, args...))
	os.Exit(1)
}

// openIndex resolves the --index/--datum-size/... flags (or their
// CAPIDX_* environment/config equivalents) through viper and opens the
// index, dying with a formatted error on failure — the cobra
// counterpart of the teacher's flag.Parse-then-log.Fatal start-up path.
func openIndex() *caption.Index {
	path := viper.GetString("index")
	if path == "" {
		die("no index path given: pass --index or set CAPIDX_INDEX")
	}
	ix, err := caption.Open(path, caption.Options{
		DatumSize:     viper.GetInt("datum-size"),
		StartTimeSize: viper.GetInt("start-time-size"),
		EndTimeSize:   viper.GetInt("end-time-size"),
		Debug:         viper.GetBool("debug"),
	})
	if err != nil {
		die("open %s: %v", path, err)
	}
	return ix
}

func parseDocIDs(args []string) ([]caption.DocumentId, error) {
	ids := make([]caption.DocumentId, 0, len(args))
	for _, a := range args {
		var v uint32
		if _, err := fmt.Sscanf(a, "%d", &v); err != nil {
			return nil, fmt.Errorf("invalid document id %q: %w", a, err)
		}
		ids = append(ids, caption.DocumentId(v))
	}
	return ids, nil
}

func parseTokenIDs(args []string) ([]caption.TokenId, error) {
	ids := make([]caption.TokenId, 0, len(args))
	for _, a := range args {
		var v uint32
		if _, err := fmt.Sscanf(a, "%d", &v); err != nil {
			return nil, fmt.Errorf("invalid token id %q: %w", a, err)
		}
		ids = append(ids, caption.TokenId(v))
	}
	return ids, nil
}
