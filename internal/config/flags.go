package config

import (
	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	FlagRepositoryURL  = "repository-url"
	FlagRequestTimeout = "request-timeout"
	FlagRetryCount     = "retry-count"
	FlagLogLevel       = "log-level"
	FlagConfig         = "config"
)

// BindFlags registers the configuration flags on fs and returns the
// [StructuredConfig] they write into. The returned value is only meaningful
// after fs has been parsed; unset flags keep their zero value so that they
// never override lower-priority sources.
//
// Flags:
//
//	-u, --repository-url   collection root of the version-control server
//	    --request-timeout  request timeout (e.g., "30s", "1m")
//	    --retry-count      retries for failed requests
//	    --log-level        log level (debug, info, warn, error)
//	-c, --config           JSON or YAML config file path
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Repository.URL, FlagRepositoryURL, "u", "", "Repository collection URL")
	fs.DurationVar(&cfg.Repository.RequestTimeout, FlagRequestTimeout, 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Repository.RetryCount, FlagRetryCount, 0, "Retries for failed requests")
	fs.StringVar(&cfg.Log.Level, FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.FilePath, FlagConfig, "c", "", "JSON or YAML config file path")

	return cfg
}
