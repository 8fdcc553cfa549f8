package main

import (
	"regexp"

	coha "github.com/echoface/coha_filter"
	"github.com/echoface/coha_filter/example/driver"
)

// get + past participle
func main() {
	driver.Main("get-passive", func(c *coha.Corpus) []*coha.Search {
		fGet := c.BuildFilter(coha.WordIs("get"))
		fPart := c.BuildFilter(coha.PoSMatches(regexp.MustCompile(`^v.n`)))
		return []*coha.Search{
			coha.NewSearch("get", fGet, fPart),
		}
	})
}
