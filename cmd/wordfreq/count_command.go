package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordfreq/internal/config"
	"wordfreq/internal/counter"
	"wordfreq/internal/logging"
	"wordfreq/internal/pipeline"
	"wordfreq/internal/report"
	"wordfreq/internal/term"
)

// runCount executes one counting run: config and flags resolve to pipeline
// options, the report goes to stdout, diagnostics to stderr. Per-file skips
// never surface as an error here, so the exit code stays zero for them.
func runCount(cmd *cobra.Command, cfg *config.Config, root string, byFrequency, caseSensitive bool) error {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	tokenizer, err := term.ParsePolicy(cfg.Scan.Tokenizer)
	if err != nil {
		return err
	}
	order, err := report.ParseOrder(cfg.Report.Order)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	// Config seeds the defaults; a flag the user actually set wins, in
	// either direction.
	casePolicy := counter.CaseInsensitive
	if cfg.Report.CaseSensitive {
		casePolicy = counter.CaseSensitive
	}
	if cmd.Flags().Changed("case-sensitive") {
		casePolicy = counter.CaseInsensitive
		if caseSensitive {
			casePolicy = counter.CaseSensitive
		}
	}
	if cmd.Flags().Changed("print-by-frequency") {
		order = report.OrderLexicographic
		if byFrequency {
			order = report.OrderByFrequency
		}
	}

	runner := pipeline.New(pipeline.Options{
		Tokenizer:   tokenizer,
		Case:        casePolicy,
		BufferBytes: cfg.Scan.BufferKiB * 1024,
	}, logger)

	res, err := runner.Run(root)
	if err != nil {
		return err
	}

	report.Sort(res.Rows, order)
	return report.Render(cmd.OutOrStdout(), res.Rows, format)
}
