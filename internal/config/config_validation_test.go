package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "empty", cfg: StructuredConfig{}},
		{
			name: "valid",
			cfg: StructuredConfig{
				Repository: Repository{URL: "https://tfs.example.com/tfs", RequestTimeout: time.Second, RetryCount: 1},
				Log:        Log{Level: "info"},
			},
		},
		{
			name:    "unsupported scheme",
			cfg:     StructuredConfig{Repository: Repository{URL: "ftp://tfs/tfs"}},
			wantErr: ErrInvalidRepositoryURL,
		},
		{
			name:    "no host",
			cfg:     StructuredConfig{Repository: Repository{URL: "http:///tfs"}},
			wantErr: ErrInvalidRepositoryURL,
		},
		{
			name:    "unparsable url",
			cfg:     StructuredConfig{Repository: Repository{URL: "http://tfs:port/"}},
			wantErr: ErrInvalidRepositoryURL,
		},
		{
			name:    "negative timeout",
			cfg:     StructuredConfig{Repository: Repository{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidRepositoryConfigs,
		},
		{
			name:    "negative retries",
			cfg:     StructuredConfig{Repository: Repository{RetryCount: -1}},
			wantErr: ErrInvalidRepositoryConfigs,
		},
		{
			name:    "unknown log level",
			cfg:     StructuredConfig{Log: Log{Level: "chatty"}},
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRepository_RequireURL(t *testing.T) {
	assert.ErrorIs(t, Repository{}.RequireURL(), ErrMissingRepositoryURL)
	assert.NoError(t, Repository{URL: "http://tfs"}.RequireURL())
}
