// Command capidx is a query front end over a caption index: the
// cobra/viper counterpart to the trigram-index teacher's flag-based
// cindex/csearch/cserver, adapted to this package's verbs (unigram,
// ngram, tokens, intervals, position, meta, check) instead of
// regexp/grep.
package main

import "github.com/scanner-research/captionidx/cmd/capidx/cmd"

func main() {
	cmd.Execute()
}
