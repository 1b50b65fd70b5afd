package generator

import (
	"strings"
	"time"
)

// weightedString picks from values using the given relative weights. A
// mismatched weight list degrades to a uniform pick so a shortened custom
// vocabulary cannot crash a run.
func (g *Generator) weightedString(values []string, weights []float64) string {
	if len(values) == 0 {
		return ""
	}
	if len(weights) != len(values) {
		return g.faker.RandomString(values)
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	r := g.faker.Float64Range(0, total)
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}

func (g *Generator) weightedInt(values []int, weights []float64) int {
	if len(values) == 0 {
		return 0
	}
	if len(weights) != len(values) {
		return values[g.faker.Number(0, len(values)-1)]
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	r := g.faker.Float64Range(0, total)
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}

// sample returns k distinct values, k capped at len(values).
func (g *Generator) sample(values []string, k int) []string {
	if k > len(values) {
		k = len(values)
	}

	shuffled := make([]string, len(values))
	copy(shuffled, values)
	g.faker.ShuffleStrings(shuffled)

	return shuffled[:k]
}

// dateBetween draws a random instant in [start, end].
func (g *Generator) dateBetween(start, end time.Time) time.Time {
	if !start.Before(end) {
		return start
	}
	return g.faker.DateRange(start, end)
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
