package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidRepositoryURL indicates a repository URL that is not an
	// absolute http or https URL.
	ErrInvalidRepositoryURL = errors.New("invalid repository url")
	// ErrInvalidRepositoryConfigs indicates invalid request settings
	// (for example, a negative timeout or retry count).
	ErrInvalidRepositoryConfigs = errors.New("invalid repository configuration")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrMissingRepositoryURL is returned by [Repository.RequireURL] when a
	// command needs the server but none was configured.
	ErrMissingRepositoryURL = errors.New("repository url is not configured")
)
