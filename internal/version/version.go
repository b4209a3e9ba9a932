// Package version carries the build version (set with -ldflags "-X miner/internal/version.Version=...").
package version

var Version = "0.3.0-dev"
