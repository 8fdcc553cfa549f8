package coha_filter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"
	aho "github.com/anknown/ahocorasick"
	"github.com/echoface/coha_filter/util"
)

type (
	filterKind uint8

	// Filter per position match rule, either match anything or match a fixed
	// set of word ids. immutable once built, safe for concurrent Matches
	Filter struct {
		kind filterKind
		ids  *roaring.Bitmap
	}

	// WordPredicate evaluated once per lexicon entry when a Filter is built
	WordPredicate func(w *Word) bool
)

const (
	matchAny filterKind = iota
	matchSet
)

// AnyFilter wildcard position
var AnyFilter = &Filter{kind: matchAny}

// NewSetFilter build a filter matching exactly the given word ids
func NewSetFilter(ids ...WordID) *Filter {
	bm := roaring.New()
	for _, id := range ids {
		bm.Add(uint32(id))
	}
	bm.RunOptimize()
	return &Filter{kind: matchSet, ids: bm}
}

// NewFilter scan every present word of lexicon and collect the ones pred accept,
// a nil pred yields AnyFilter
func NewFilter(lexicon *Lexicon, pred WordPredicate) *Filter {
	if pred == nil {
		return AnyFilter
	}
	bm := roaring.New()
	lexicon.Range(func(w *Word) bool {
		if pred(w) {
			bm.Add(uint32(w.WordID))
		}
		return true
	})
	bm.RunOptimize()
	return &Filter{kind: matchSet, ids: bm}
}

func (f *Filter) IsAny() bool {
	return f.kind == matchAny
}

func (f *Filter) Matches(id WordID) bool {
	if f.kind == matchAny {
		return true
	}
	return f.ids.Contains(uint32(id))
}

// Size number of matching word ids, 0 for AnyFilter
func (f *Filter) Size() uint64 {
	if f.kind == matchAny {
		return 0
	}
	return f.ids.GetCardinality()
}

// WordIDs matching ids in ascending order, nil for AnyFilter
func (f *Filter) WordIDs() []WordID {
	if f.kind == matchAny {
		return nil
	}
	ids := make([]WordID, 0, f.ids.GetCardinality())
	iter := f.ids.Iterator()
	for iter.HasNext() {
		ids = append(ids, WordID(iter.Next()))
	}
	return ids
}

func (f *Filter) String() string {
	if f.kind == matchAny {
		return "∞"
	}
	return strconv.FormatUint(f.ids.GetCardinality(), 10)
}

// WordIs match the lowercased word form
func WordIs(s string) WordPredicate {
	return func(w *Word) bool {
		return w.Word == s
	}
}

// WordCSIs match the case sensitive word form
func WordCSIs(s string) WordPredicate {
	return func(w *Word) bool {
		return w.WordCS == s
	}
}

func LemmaIs(s string) WordPredicate {
	return func(w *Word) bool {
		return w.Lemma == s
	}
}

func PoSIs(tag string) WordPredicate {
	return func(w *Word) bool {
		return w.PoS == tag
	}
}

// PoSHasPrefix eg: "vb" for every form of 'be'
func PoSHasPrefix(prefix string) WordPredicate {
	return func(w *Word) bool {
		return strings.HasPrefix(w.PoS, prefix)
	}
}

// PoSMatches match the CLAWS tag against re, eg: ^v.i for infinitives
func PoSMatches(re *regexp.Regexp) WordPredicate {
	return func(w *Word) bool {
		return re.MatchString(w.PoS)
	}
}

// WordContainsAny match words whose lowercased form contains any of patterns
func WordContainsAny(patterns ...string) WordPredicate {
	uniq := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		if len(p) > 0 {
			uniq[strings.ToLower(p)] = struct{}{}
		}
	}
	keys := make([][]rune, 0, len(uniq))
	for _, p := range util.SortedKeys(uniq) {
		keys = append(keys, []rune(p))
	}
	if len(keys) == 0 {
		return func(*Word) bool { return false }
	}
	machine := new(aho.Machine)
	util.PanicIfErr(machine.Build(keys), "build ac machine fail")
	return func(w *Word) bool {
		return len(machine.MultiPatternSearch([]rune(w.Word), true)) > 0
	}
}

func And(preds ...WordPredicate) WordPredicate {
	return func(w *Word) bool {
		for _, p := range preds {
			if !p(w) {
				return false
			}
		}
		return true
	}
}

func Or(preds ...WordPredicate) WordPredicate {
	return func(w *Word) bool {
		for _, p := range preds {
			if p(w) {
				return true
			}
		}
		return false
	}
}

func Not(pred WordPredicate) WordPredicate {
	return func(w *Word) bool {
		return !pred(w)
	}
}
