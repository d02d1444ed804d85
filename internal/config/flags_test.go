package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBindFlags tests that parsed flags land in the returned config.
func TestBindFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"--repository-url", "http://tfs:8080/tfs",
				"--request-timeout", "10s",
				"--retry-count", "2",
				"--log-level", "warn",
				"--config", "/etc/tfinspect.yaml",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://tfs:8080/tfs", cfg.Repository.URL)
				assert.Equal(t, 10*time.Second, cfg.Repository.RequestTimeout)
				assert.Equal(t, 2, cfg.Repository.RetryCount)
				assert.Equal(t, "warn", cfg.Log.Level)
				assert.Equal(t, "/etc/tfinspect.yaml", cfg.FilePath)
			},
		},
		{
			name: "shorthands",
			args: []string{"-u", "https://tfs.example.com", "-c", "cfg.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://tfs.example.com", cfg.Repository.URL)
				assert.Equal(t, "cfg.json", cfg.FilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg := BindFlags(fs)

			require.NoError(t, fs.Parse(tt.args))
			tt.validate(t, cfg)
		})
	}
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--request-timeout", "soon"}))
}
