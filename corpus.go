package coha_filter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

type (
	// Corpus sources, lexicon and corpus file list of one COHA installation.
	// read only once loaded, a single Corpus can serve concurrent searches
	Corpus struct {
		rootDir string
		workers int

		sources Sources
		lexicon *Lexicon
		files   CorpusFiles
	}

	loadOptions struct {
		workers int
	}

	LoadOption func(opt *loadOptions)

	// SearchReport totals of one search over all corpus files
	SearchReport struct {
		Label    string
		Hits     int
		HitFiles int
	}

	Report struct {
		Files    []FileReport
		Searches []SearchReport
	}
)

// WithWorkers limit how many corpus files are scanned at the same time
func WithWorkers(n int) LoadOption {
	return func(opt *loadOptions) {
		if n > 0 {
			opt.workers = n
		}
	}
}

// Load read sources table, lexicon and corpus file list under rootDir, the
// lexicon is parsed concurrently with the other two. when several parts fail
// the error reported is the corpus files one, then sources, then lexicon
func Load(rootDir string, opts ...LoadOption) (*Corpus, error) {
	options := loadOptions{workers: runtime.NumCPU()}
	for _, fn := range opts {
		fn(&options)
	}

	c := &Corpus{rootDir: rootDir, workers: options.workers}

	var filesErr, sourcesErr, lexiconErr error
	var g errgroup.Group
	g.Go(func() error {
		if c.files, filesErr = readCorpus(rootDir); filesErr != nil {
			return nil
		}
		c.sources, sourcesErr = readSources(rootDir)
		return nil
	})
	g.Go(func() error {
		c.lexicon, lexiconErr = readLexicon(rootDir)
		return nil
	})
	_ = g.Wait()
	for _, err := range []error{filesErr, sourcesErr, lexiconErr} {
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Corpus) Sources() Sources {
	return c.sources
}

func (c *Corpus) Lexicon() *Lexicon {
	return c.lexicon
}

func (c *Corpus) Files() CorpusFiles {
	return c.files
}

// DumpInfo debug api
// {root: %s, sources:%d words:%d padding:%d files:[1810s ...] workers:%d}
func (c *Corpus) DumpInfo(sb *strings.Builder) {
	ids := make([]string, 0, len(c.files))
	for _, cf := range c.files {
		ids = append(ids, cf.Identifier)
	}
	fmt.Fprintf(sb, "{root: %s, sources:%d words:%d padding:%d files:%v workers:%d}",
		c.rootDir, len(c.sources), c.lexicon.Count(), c.lexicon.Gaps(), ids, c.workers)
}

func PrintCorpusInfo(c *Corpus) {
	if c == nil {
		fmt.Println("nil corpus")
		return
	}
	sb := &strings.Builder{}
	c.DumpInfo(sb)
	fmt.Println(sb.String())
}

// BuildFilter precompute the set of word ids pred accept, nil pred match anything
func (c *Corpus) BuildFilter(pred WordPredicate) *Filter {
	return NewFilter(c.lexicon, pred)
}

// Search run every search over every corpus file, see SearchWithReport
func (c *Corpus) Search(resultDir string, searches ...*Search) error {
	_, err := c.SearchWithReport(resultDir, searches...)
	return err
}

// SearchWithReport scan corpus files in parallel, one task per file. each task
// own its input and output files. once all tasks are done the error of the
// first failing file in corpus order is returned
func (c *Corpus) SearchWithReport(resultDir string, searches ...*Search) (*Report, error) {
	if len(searches) == 0 {
		return &Report{}, nil
	}
	if err := validateSearches(searches); err != nil {
		return nil, err
	}

	for _, search := range searches {
		LogInfo("search %s: filter sizes: %s", search.Label, search.FilterSizes())
		dir := filepath.Join(resultDir, search.Label)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	reports := make([]FileReport, len(c.files))
	errs := make([]error, len(c.files))
	var g errgroup.Group
	g.SetLimit(c.workers)
	for i, cf := range c.files {
		i, cf := i, cf
		g.Go(func() error {
			reports[i], errs[i] = searchFile(c, cf, resultDir, searches)
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	report := &Report{Files: reports, Searches: make([]SearchReport, len(searches))}
	for idx, search := range searches {
		sr := &report.Searches[idx]
		sr.Label = search.Label
		for _, fr := range reports {
			sr.Hits += fr.SearchHits[idx]
			if fr.SearchHits[idx] > 0 {
				sr.HitFiles++
			}
		}
		LogInfo("search %s: %d hits in %d files", sr.Label, sr.Hits, sr.HitFiles)
	}
	return report, nil
}
