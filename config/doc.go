// Package config loads process configuration for the article pipeline.
//
// Resolution is layered: built-in defaults, then an optional YAML file,
// then ARTICLEFLOW_* environment variables, with later layers winning.
// Secrets (API keys, passwords) are expected from the environment; the
// file carries the rest.
package config
