// Package cmd provides the command-line interface implementation for treegen.
//
// This package contains all the subcommand implementations for the treegen CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - generate: Random directory tree generation
//   - count: File counting with a .txt/.md breakdown
//   - verify: Checking a generated tree against its manifest
//   - schema: JSON Schema for preset files
//   - hook: Commit hooks such as the attribution filter
//   - version: Build information
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command.
package cmd
