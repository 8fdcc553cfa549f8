package main

import (
	"regexp"

	coha "github.com/echoface/coha_filter"
	"github.com/echoface/coha_filter/example/driver"
)

// be going to + infinitive, and the contracted gonna with and without a verb
func main() {
	driver.Main("be-going-to", func(c *coha.Corpus) []*coha.Search {
		fBe := c.BuildFilter(coha.PoSHasPrefix("vb"))
		fInf := c.BuildFilter(coha.PoSMatches(regexp.MustCompile(`^v.i`)))
		fGoing := c.BuildFilter(coha.WordIs("going"))
		fTo := c.BuildFilter(coha.WordIs("to"))
		fGon := c.BuildFilter(coha.WordIs("gon"))
		fNa := c.BuildFilter(coha.WordIs("na"))

		return []*coha.Search{
			coha.NewSearch("be-going-to-verb", fBe, fGoing, fTo, fInf),
			coha.NewSearch("gonna-verb", fGon, fNa, fInf),
			coha.NewSearch("gonna-any", fGon, fNa, coha.AnyFilter),
		}
	})
}
