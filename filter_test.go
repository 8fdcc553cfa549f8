package coha_filter

import (
	"errors"
	"regexp"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestFilter(t *testing.T) {
	lexicon := mustParseLexicon(t, testLexicon)

	convey.Convey("any filter match every id, even unknown ones", t, func() {
		f := NewFilter(lexicon, nil)
		convey.So(f, convey.ShouldEqual, AnyFilter)
		convey.So(f.IsAny(), convey.ShouldBeTrue)
		for _, id := range []WordID{0, 1, 4, 11, MaxWordID} {
			convey.So(f.Matches(id), convey.ShouldBeTrue)
		}
		convey.So(f.String(), convey.ShouldEqual, "∞")
		convey.So(f.WordIDs(), convey.ShouldBeNil)
	})

	convey.Convey("set filter match exactly the accepted present words", t, func() {
		f := NewFilter(lexicon, PoSHasPrefix("vb"))
		convey.So(f.IsAny(), convey.ShouldBeFalse)
		convey.So(f.WordIDs(), convey.ShouldResemble, []WordID{2, 3})
		convey.So(f.Size(), convey.ShouldEqual, 2)
		convey.So(f.String(), convey.ShouldEqual, "2")
		convey.So(f.Matches(2), convey.ShouldBeTrue)
		convey.So(f.Matches(5), convey.ShouldBeFalse)

		// every word is evaluated once against the predicate, gaps never
		evaluated := 0
		all := NewFilter(lexicon, func(w *Word) bool {
			evaluated++
			return true
		})
		convey.So(evaluated, convey.ShouldEqual, lexicon.Count())
		convey.So(all.Size(), convey.ShouldEqual, 7)
		convey.So(all.Matches(4), convey.ShouldBeFalse)
	})

	convey.Convey("predicate helpers", t, func() {
		convey.So(NewFilter(lexicon, WordIs("going")).WordIDs(), convey.ShouldResemble, []WordID{5})
		convey.So(NewFilter(lexicon, WordCSIs("He")).WordIDs(), convey.ShouldResemble, []WordID{1})
		convey.So(NewFilter(lexicon, WordCSIs("he")).Size(), convey.ShouldEqual, 0)
		convey.So(NewFilter(lexicon, LemmaIs("be")).WordIDs(), convey.ShouldResemble, []WordID{2, 3})
		convey.So(NewFilter(lexicon, PoSIs("vvi")).WordIDs(), convey.ShouldResemble, []WordID{6})
		convey.So(NewFilter(lexicon, PoSMatches(regexp.MustCompile(`^v.i`))).WordIDs(), convey.ShouldResemble, []WordID{6})
		convey.So(NewFilter(lexicon, And(LemmaIs("be"), PoSIs("vbz"))).WordIDs(), convey.ShouldResemble, []WordID{2})
		convey.So(NewFilter(lexicon, Or(WordIs("to"), WordIs("home"))).WordIDs(), convey.ShouldResemble, []WordID{9, 11})
		convey.So(NewFilter(lexicon, Not(PoSHasPrefix("v"))).WordIDs(), convey.ShouldResemble, []WordID{1, 9, 11})
	})

	convey.Convey("substring predicate", t, func() {
		f := NewFilter(lexicon, WordContainsAny("O", "ea", "o"))
		convey.So(f.WordIDs(), convey.ShouldResemble, []WordID{5, 6, 9, 11})

		convey.So(NewFilter(lexicon, WordContainsAny("xyz")).Size(), convey.ShouldEqual, 0)
		convey.So(NewFilter(lexicon, WordContainsAny()).Size(), convey.ShouldEqual, 0)
		convey.So(NewFilter(lexicon, WordContainsAny("")).Size(), convey.ShouldEqual, 0)
	})

	convey.Convey("filter from explicit ids", t, func() {
		f := NewSetFilter(9, 5, 5)
		convey.So(f.WordIDs(), convey.ShouldResemble, []WordID{5, 9})
		convey.So(NewSetFilter().Matches(0), convey.ShouldBeFalse)
	})
}

func TestSearch(t *testing.T) {
	convey.Convey("filter sizes and validation", t, func() {
		s := NewSearch("going-to", NewSetFilter(5), AnyFilter, NewSetFilter(1, 2, 3))
		convey.So(s.Len(), convey.ShouldEqual, 3)
		convey.So(s.FilterSizes(), convey.ShouldEqual, "1, ∞, 3")
		convey.So(validateSearches([]*Search{s}), convey.ShouldBeNil)

		convey.So(errors.Is(validateSearches([]*Search{NewSearch("empty")}), ErrEmptySearch), convey.ShouldBeTrue)
		convey.So(errors.Is(validateSearches([]*Search{NewSearch("", AnyFilter)}), ErrInvalidLabel), convey.ShouldBeTrue)
		convey.So(errors.Is(validateSearches([]*Search{NewSearch("a/b", AnyFilter)}), ErrInvalidLabel), convey.ShouldBeTrue)
		convey.So(errors.Is(validateSearches([]*Search{NewSearch("..", AnyFilter)}), ErrInvalidLabel), convey.ShouldBeTrue)
		convey.So(errors.Is(validateSearches([]*Search{s, NewSearch("going-to", AnyFilter)}), ErrInvalidLabel), convey.ShouldBeTrue)
		convey.So(errors.Is(validateSearches([]*Search{NewSearch("x", nil)}), ErrNilFilter), convey.ShouldBeTrue)
		convey.So(errors.Is(validateSearches([]*Search{NewSearch("x", AnyFilter, nil)}), ErrNilFilter), convey.ShouldBeTrue)
	})

	convey.Convey("match short circuit on the first failing position", t, func() {
		tokens := []Token{{WordID: 5}, {WordID: 9}, {WordID: 6}}
		s := NewSearch("s", NewSetFilter(5), NewSetFilter(9), AnyFilter)
		convey.So(s.matchAt(tokens, 0), convey.ShouldBeTrue)
		// position 1 fails at j=0, so tokens[1+2] is never read
		convey.So(s.matchAt(tokens, 1), convey.ShouldBeFalse)
	})
}
