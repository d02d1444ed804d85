// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable.
// An empty repository URL is accepted here: only the commands that talk to
// the server require one (see [Repository.RequireURL]).
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Repository.validate(); err != nil {
		return err
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
		}
	}

	return nil
}

func (r Repository) validate() error {
	if r.RequestTimeout < 0 || r.RetryCount < 0 {
		return ErrInvalidRepositoryConfigs
	}

	if r.URL == "" {
		return nil
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRepositoryURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidRepositoryURL, r.URL)
	}

	return nil
}

// RequireURL returns [ErrMissingRepositoryURL] when no server is configured.
func (r Repository) RequireURL() error {
	if r.URL == "" {
		return ErrMissingRepositoryURL
	}
	return nil
}
