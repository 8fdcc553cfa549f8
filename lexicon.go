package coha_filter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/echoface/coha_filter/parser"
	"github.com/echoface/coha_filter/util"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const LexiconFile = "shared/coha_lexicon.txt"

var (
	lexiconHeader    = []string{"wID", "wordCS", "word", "lemma", "PoS"}
	lexiconSeparator = []string{"----", "----", "----", "----", "----"}
	lexiconBlank     = []string{""}
)

type (
	// Word one lexicon entry, WordCS keep the original casing
	Word struct {
		WordID WordID
		WordCS string
		Word   string
		Lemma  string
		PoS    string
	}

	// Lexicon dense vocabulary, words[id] is the entry with WordID id or nil for
	// ids the lexicon file skips
	Lexicon struct {
		words []*Word
		gaps  int
	}
)

// stripControl remove unicode control characters, the lexicon carries a few
// stray ones inside word forms
func stripControl(t transform.Transformer, s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func parseWord(path, line string, cleaner transform.Transformer) (*Word, error) {
	fields := parser.NewFieldCursor(path, line)

	id, err := fields.Uint32()
	if err != nil {
		return nil, err
	}
	wordCS, err := fields.Next()
	if err != nil {
		return nil, err
	}
	word, err := fields.Next()
	if err != nil {
		return nil, err
	}
	lemma, err := fields.Next()
	if err != nil {
		return nil, err
	}
	pos, err := fields.Next()
	if err != nil {
		return nil, err
	}
	return &Word{
		WordID: WordID(id),
		WordCS: stripControl(cleaner, wordCS),
		Word:   stripControl(cleaner, word),
		Lemma:  lemma,
		PoS:    pos,
	}, nil
}

// Get return the word for id, false when id is a gap or out of range
func (l *Lexicon) Get(id WordID) (*Word, bool) {
	if int64(id) >= int64(len(l.words)) {
		return nil, false
	}
	w := l.words[id]
	return w, w != nil
}

// Len max word id + 1, gaps included
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Count number of present words
func (l *Lexicon) Count() int {
	return len(l.words) - l.gaps
}

// Gaps number of skipped ids padded with placeholders
func (l *Lexicon) Gaps() int {
	return l.gaps
}

// Range visit every present word in id order until fn return false
func (l *Lexicon) Range(fn func(w *Word) bool) {
	for _, w := range l.words {
		if w == nil {
			continue
		}
		if !fn(w) {
			return
		}
	}
}

func (l *Lexicon) add(path string, w *Word) error {
	if int64(w.WordID) < int64(len(l.words)) {
		return parser.NewTSVError(path, "word IDs not increasing")
	}
	for int64(w.WordID) > int64(len(l.words)) {
		l.words = append(l.words, nil)
		l.gaps++
	}
	util.PanicIf(int64(len(l.words)) != int64(w.WordID), "lexicon padding broken at word id %d", w.WordID)
	l.words = append(l.words, w)
	return nil
}

// parseLexicon parse already decoded lexicon text
func parseLexicon(path string, r io.Reader) (*Lexicon, error) {
	sc := parser.NewScanner(r)
	for _, expected := range [][]string{lexiconHeader, lexiconSeparator, lexiconBlank} {
		if err := parser.CheckHeader(path, sc, expected); err != nil {
			return nil, err
		}
	}

	cleaner := runes.Remove(runes.In(unicode.Cc))
	lexicon := &Lexicon{}
	for sc.Scan() {
		word, err := parseWord(path, sc.Text(), cleaner)
		if err != nil {
			return nil, err
		}
		if err = lexicon.add(path, word); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lexicon, nil
}

func readLexicon(rootDir string) (*Lexicon, error) {
	path := filepath.Join(rootDir, LexiconFile)
	LogDebug("%s: reading...", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	// the lexicon is shipped in code page 437, not utf8
	lexicon, err := parseLexicon(path, charmap.CodePage437.NewDecoder().Reader(file))
	if err != nil {
		return nil, err
	}
	LogInfo("%s: %d words, %d padding", path, lexicon.Count(), lexicon.Gaps())
	return lexicon, nil
}
