package main

import (
	coha "github.com/echoface/coha_filter"
	"github.com/echoface/coha_filter/example/driver"
)

func main() {
	driver.Main("dork", func(c *coha.Corpus) []*coha.Search {
		return []*coha.Search{
			coha.NewSearch("dork", c.BuildFilter(coha.LemmaIs("dork"))),
			coha.NewSearch("dork-any-form", c.BuildFilter(coha.WordContainsAny("dork"))),
		}
	})
}
