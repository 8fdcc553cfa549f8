package coha_filter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/echoface/coha_filter/parser"
)

type (
	// FileReport counters of one corpus file scan, SearchHits is indexed like the searches
	FileReport struct {
		File       *CorpusFile
		Tokens     int
		Texts      int
		Hits       int
		HitTexts   int
		SearchHits []int
	}

	// fileScanner stream one corpus file, buffer the tokens of the current text
	// and run every search over it when the text ends
	fileScanner struct {
		path     string
		sources  Sources
		searches []*Search
		writers  []*resultWriter
		report   FileReport
	}
)

func newFileScanner(cf *CorpusFile, sources Sources, searches []*Search, writers []*resultWriter) *fileScanner {
	return &fileScanner{
		path:     cf.Path,
		sources:  sources,
		searches: searches,
		writers:  writers,
		report: FileReport{
			File:       cf,
			SearchHits: make([]int, len(searches)),
		},
	}
}

// scan a token stream in one forward pass, rows must be grouped by text and
// token ids strictly increasing inside a text
func (fs *fileScanner) scan(r io.Reader) error {
	sc := parser.NewScanner(r)
	run := make([]Token, 0, 4096)
	for sc.Scan() {
		token, err := parseToken(fs.path, sc.Text())
		if err != nil {
			return err
		}
		fs.report.Tokens++

		if len(run) > 0 {
			prev := run[len(run)-1]
			if prev.TextID != token.TextID {
				if err = fs.flush(run); err != nil {
					return err
				}
				run = run[:0]
			} else if prev.TokenID >= token.TokenID {
				return parser.NewTSVError(fs.path, "token IDs not increasing")
			}
		}
		run = append(run, token)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", fs.path, err)
	}
	if len(run) > 0 {
		return fs.flush(run)
	}
	return nil
}

// flush match every search against one complete text
func (fs *fileScanner) flush(run []Token) error {
	fs.report.Texts++

	textID := run[0].TextID
	source, ok := fs.sources[textID]
	if !ok {
		LogWarn("%s: unknown text ID %d", fs.path, textID)
		return nil
	}

	hits := 0
	for idx, search := range fs.searches {
		n, err := fs.searchText(fs.writers[idx], search, source, run)
		if err != nil {
			return err
		}
		fs.report.SearchHits[idx] += n
		hits += n
	}
	fs.report.Hits += hits
	if hits > 0 {
		fs.report.HitTexts++
	}
	return nil
}

// searchText slide the pattern over every start position, overlapping hits are all kept
func (fs *fileScanner) searchText(w *resultWriter, search *Search, source *Source, run []Token) (int, error) {
	hits := 0
	m, n := search.Len(), len(run)
	for i := 0; i+m <= n; i++ {
		if !search.matchAt(run, i) {
			continue
		}
		if err := w.writeHit(source, run, i); err != nil {
			return hits, err
		}
		hits++
	}
	return hits, nil
}

// searchFile run all searches over one corpus file, writing
// <resultDir>/<label>/<label>-<identifier>.csv for each search
func searchFile(c *Corpus, cf *CorpusFile, resultDir string, searches []*Search) (report FileReport, err error) {
	LogDebug("%s: reading...", cf.Path)

	writers := make([]*resultWriter, 0, len(searches))
	defer func() {
		for _, w := range writers {
			if cerr := w.Close(); err == nil {
				err = cerr
			}
		}
	}()
	for _, search := range searches {
		out := filepath.Join(resultDir, search.Label, cf.OutputName(search.Label))
		w, werr := newResultWriter(out, cf.Path, c.lexicon, search.Len())
		if werr != nil {
			return report, werr
		}
		writers = append(writers, w)
	}

	file, err := os.Open(cf.Path)
	if err != nil {
		return report, fmt.Errorf("open %s: %w", cf.Path, err)
	}
	defer file.Close()

	fs := newFileScanner(cf, c.sources, searches, writers)
	if err = fs.scan(file); err != nil {
		return fs.report, err
	}
	report = fs.report
	LogInfo("%s: %d tokens in %d texts, %d hits in %d texts",
		cf.Path, report.Tokens, report.Texts, report.Hits, report.HitTexts)
	return report, nil
}
