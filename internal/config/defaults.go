package config

const (
	defaultTokenizer    = "classic"
	defaultBufferKiB    = 10 * 1024
	defaultReportOrder  = "lexicographic"
	defaultReportFormat = "plain"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Tokenizer: defaultTokenizer,
			BufferKiB: defaultBufferKiB,
		},
		Report: Report{
			Order:         defaultReportOrder,
			CaseSensitive: false,
			Format:        defaultReportFormat,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
