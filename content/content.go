// Package content generates plaintext and markdown bodies from random words.
//
// Both generators draw a total word budget up front and spend it in chunks
// (sentences, sections, list items) until it is exhausted, so output length
// tracks the requested bounds and generation always terminates.
package content

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dendrascience/treegen/util"
)

const (
	minSentenceWords = 5
	maxSentenceWords = 15

	minParagraphWords = 20
	maxParagraphWords = 60

	minSectionWords = 15
	maxSectionWords = 50

	minListItems = 3
	maxListItems = 6
)

type section int

const (
	sectionParagraph section = iota
	sectionHeading
	sectionBullets
	sectionNumbered
)

// sectionWeights is indexed by section.
var sectionWeights = []float64{5, 2, 2, 1}

// Generator produces document bodies. It is not safe for concurrent use.
type Generator struct {
	rng   *rand.Rand
	words []string
	title cases.Caser
}

// New returns a Generator drawing from rng and words. words must not be empty.
func New(rng *rand.Rand, words []string) *Generator {
	return &Generator{
		rng:   rng,
		words: words,
		title: cases.Title(language.Und),
	}
}

// Word returns a uniformly chosen word.
func (g *Generator) Word() string {
	return g.words[g.rng.IntN(len(g.words))]
}

// Capitalize upper-cases the first letter of w.
func (g *Generator) Capitalize(w string) string {
	return g.title.String(w)
}

func (g *Generator) capitalizedWords(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.Capitalize(g.Word())
	}
	return strings.Join(parts, " ")
}

// item returns n random words with the first one capitalized.
func (g *Generator) item(n int) []string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = g.Word()
	}
	parts[0] = g.Capitalize(parts[0])
	return parts
}

type sentence struct {
	text  string
	words int
}

func (g *Generator) sentences(target int) []sentence {
	var out []sentence
	for remaining := target; remaining > 0; {
		n := min(util.IntBetween(g.rng, minSentenceWords, maxSentenceWords), remaining)
		out = append(out, sentence{text: strings.Join(g.item(n), " ") + ".", words: n})
		remaining -= n
	}
	return out
}

func joinSentences(ss []sentence) string {
	texts := make([]string, len(ss))
	for i, s := range ss {
		texts[i] = s.text
	}
	return strings.Join(texts, " ")
}

// Plaintext returns between minWords and maxWords words arranged into
// sentences and paragraphs separated by blank lines, ending in a newline.
func (g *Generator) Plaintext(minWords, maxWords int) string {
	total := util.IntBetween(g.rng, minWords, maxWords)

	var (
		paragraphs []string
		current    []sentence
		count      int
	)
	limit := util.IntBetween(g.rng, minParagraphWords, maxParagraphWords)
	for _, s := range g.sentences(total) {
		current = append(current, s)
		count += s.words
		if count >= limit {
			paragraphs = append(paragraphs, joinSentences(current))
			current = nil
			count = 0
			limit = util.IntBetween(g.rng, minParagraphWords, maxParagraphWords)
		}
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, joinSentences(current))
	}
	return strings.Join(paragraphs, "\n\n") + "\n"
}

// Markdown returns a titled markdown document whose body spends between
// minWords and maxWords words on paragraphs, headed paragraphs, bullet lists
// and numbered lists.
func (g *Generator) Markdown(minWords, maxWords int) string {
	total := util.IntBetween(g.rng, minWords, maxWords)
	title := g.capitalizedWords(util.IntBetween(g.rng, 2, 5))
	lines := []string{"# " + title, ""}

	for remaining := total; remaining > 0; {
		kind := section(util.WeightedIndex(g.rng, sectionWeights))

		if kind == sectionHeading {
			level := "##"
			if g.rng.IntN(2) == 1 {
				level = "###"
			}
			lines = append(lines, level+" "+g.capitalizedWords(util.IntBetween(g.rng, 2, 4)), "")
		}

		chunk := min(util.IntBetween(g.rng, minSectionWords, maxSectionWords), remaining)

		switch kind {
		case sectionParagraph, sectionHeading:
			lines = append(lines, joinSentences(g.sentences(chunk)), "")
		case sectionBullets, sectionNumbered:
			items := util.IntBetween(g.rng, minListItems, maxListItems)
			perItem := max(chunk/items, 1)
			for i := range items {
				marker := "-"
				if kind == sectionNumbered {
					marker = fmt.Sprintf("%d.", i+1)
				}
				lines = append(lines, marker+" "+strings.Join(g.item(perItem), " "))
			}
			lines = append(lines, "")
		}

		remaining -= chunk
	}

	return strings.Join(lines, "\n")
}
