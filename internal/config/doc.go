// Package config provides configuration loading, merging, and validation
// facilities for the tfinspect tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]; flags are registered on a
// cobra/pflag flag set with [BindFlags].
package config
