package coha_filter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/echoface/coha_filter/parser"
)

// resultWriter csv output of one search for one corpus file
type resultWriter struct {
	path    string
	src     string // corpus file the rows come from
	file    *os.File
	w       *csv.Writer
	lexicon *Lexicon
	m       int
	row     []string
}

func newResultWriter(path, src string, lexicon *Lexicon, m int) (*resultWriter, error) {
	LogDebug("%s: writing...", path)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	rw := &resultWriter{
		path:    path,
		src:     src,
		file:    file,
		w:       csv.NewWriter(file),
		lexicon: lexicon,
		m:       m,
		row:     make([]string, 0, 10+4*m),
	}
	if err = rw.w.Write(ResultHeader(m)); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return rw, nil
}

// ResultHeader column names for a pattern of length m
func ResultHeader(m int) []string {
	row := []string{"text ID", "genre", "year", "title", "author", "position", "before"}
	for j := 1; j <= m; j++ {
		row = append(row, fmt.Sprintf("wordCS %d", j))
	}
	row = append(row, "after", "before_pos")
	for j := 1; j <= m; j++ {
		row = append(row,
			fmt.Sprintf("word %d", j),
			fmt.Sprintf("lemma %d", j),
			fmt.Sprintf("pos %d", j))
	}
	return append(row, "after_pos")
}

func (rw *resultWriter) word(id WordID) (*Word, error) {
	w, ok := rw.lexicon.Get(id)
	if !ok {
		return nil, parser.NewTSVError(rw.src, "unknown word ID %d", id)
	}
	return w, nil
}

// joinText case sensitive forms separated by a single space
func (rw *resultWriter) joinText(tokens []Token) (string, error) {
	sb := strings.Builder{}
	for i, t := range tokens {
		w, err := rw.word(t.WordID)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.WordCS)
	}
	return sb.String(), nil
}

// joinLemmaPoS lemma_PoS pairs separated by a single space
func (rw *resultWriter) joinLemmaPoS(tokens []Token) (string, error) {
	sb := strings.Builder{}
	for i, t := range tokens {
		w, err := rw.word(t.WordID)
		if err != nil {
			return "", err
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Lemma)
		sb.WriteByte('_')
		sb.WriteString(w.PoS)
	}
	return sb.String(), nil
}

// writeHit emit one row for the match tokens[pos:pos+m] of a single text
func (rw *resultWriter) writeHit(source *Source, tokens []Token, pos int) error {
	start, end := contextBounds(len(tokens), pos, rw.m)
	before, after := tokens[start:pos], tokens[pos+rw.m:end]

	matched := make([]*Word, rw.m)
	for j := range matched {
		w, err := rw.word(tokens[pos+j].WordID)
		if err != nil {
			return err
		}
		matched[j] = w
	}

	beforeText, err := rw.joinText(before)
	if err != nil {
		return err
	}
	afterText, err := rw.joinText(after)
	if err != nil {
		return err
	}
	beforePoS, err := rw.joinLemmaPoS(before)
	if err != nil {
		return err
	}
	afterPoS, err := rw.joinLemmaPoS(after)
	if err != nil {
		return err
	}

	row := append(rw.row[:0],
		strconv.Itoa(int(source.TextID)),
		source.Genre.String(),
		strconv.Itoa(int(source.Year)),
		source.Title,
		source.Author,
		strconv.Itoa(pos),
		beforeText)
	for _, w := range matched {
		row = append(row, w.WordCS)
	}
	row = append(row, afterText, beforePoS)
	for _, w := range matched {
		row = append(row, w.Word, w.Lemma, w.PoS)
	}
	row = append(row, afterPoS)
	rw.row = row

	if err = rw.w.Write(row); err != nil {
		return fmt.Errorf("write %s: %w", rw.path, err)
	}
	return nil
}

// Close flush buffered rows and close the file
func (rw *resultWriter) Close() error {
	rw.w.Flush()
	err := rw.w.Error()
	if cerr := rw.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("close %s: %w", rw.path, err)
	}
	return nil
}

// contextBounds [start, end) of the window around a hit at pos of length m,
// ContextSize tokens each side, clipped to the text
func contextBounds(n, pos, m int) (start, end int) {
	start = pos - ContextSize
	if start < 0 {
		start = 0
	}
	end = pos + m + ContextSize
	if end > n {
		end = n
	}
	return start, end
}
