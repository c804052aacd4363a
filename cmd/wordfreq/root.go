package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var byFrequency bool
	var caseSensitive bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "wordfreq [directory]",
		Short: "Count distinct words under a directory tree",
		Long: `Recursively scan a directory tree, tokenize every readable file, and print
each distinct word with its occurrence count.

Counting is case-insensitive and output is alphabetical by default. Files
that cannot be opened, read, or decoded as UTF-8 are reported on stderr and
skipped; the run still completes and prints whatever it counted.

Examples:
  wordfreq                       # count words under the current directory
  wordfreq ./src                 # count words under ./src
  wordfreq --print-by-frequency  # most frequent words first
  wordfreq --case-sensitive      # keep Foo and foo apart`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runCount(cmd, cfg, root, byFrequency, caseSensitive)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&byFrequency, "print-by-frequency", false, "Order output by descending count, ties alphabetical")
	rootCmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Count differently-cased spellings as distinct words")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
