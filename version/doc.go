// Package version reports treegen build metadata.
//
// Values come from -ldflags when the release build sets them:
//
//	-ldflags "-X github.com/dendrascience/treegen/version.Version=v1.0.0 -X github.com/dendrascience/treegen/version.Commit=abc123 -X github.com/dendrascience/treegen/version.Date=2025-01-01T00:00:00Z"
//
// Otherwise they fall back to the module and VCS data recorded by the Go
// toolchain, and finally to development placeholders.
package version
