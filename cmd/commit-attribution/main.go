// Command commit-attribution is a standalone build of the treegen attribution
// hook, for hosts that invoke hooks as a single executable:
//
//	commit-attribution < event.json
//
// It exits 2 with a message on stderr when a git commit carries an AI
// co-authorship trailer, and 0 otherwise.
package main

import (
	"log"
	"os"

	"github.com/dendrascience/treegen/attribution"
)

func main() {
	f, err := attribution.NewFilter()
	if err != nil {
		log.Fatal(err)
	}
	code, err := f.Run(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.Print(err)
	}
	os.Exit(code)
}
