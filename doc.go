// Package main provides the treegen command-line interface.
//
// treegen generates random directory trees populated with plaintext and
// markdown files, for use as synthetic text corpora. Trees are shaped by
// weighted choices between writing a file, opening a subdirectory and
// finishing a directory, capped by a global file count and a maximum depth.
// Seeded runs are byte-for-byte reproducible.
//
// The main binary supports multiple subcommands:
//   - generate: Build a random tree under an output directory
//   - verify: Check a tree against the manifest written by generate
//   - count: Count files in directory trees
//   - schema: Print the JSON Schema for preset files
//   - hook commit-attribution: Block git commits carrying AI attribution
package main
