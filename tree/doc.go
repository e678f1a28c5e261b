// Package tree builds random directory trees of generated text files.
//
// A Builder walks depth-first from a root directory. In every directory it
// repeatedly makes a weighted choice between writing a file, opening a
// subdirectory (while below the depth limit) and finishing the directory
// (never as the first choice). A single State is shared by the whole
// recursion, so the global file cap holds across siblings and ancestors.
//
// All filesystem access goes through a billy.Filesystem, which lets the CLI
// write to disk with osfs while tests run against memfs.
//
// After a run, Scan produces an Inventory of what is actually present and a
// Manifest records it, together with the seed and configuration, so a tree
// can later be verified or regenerated.
package tree
