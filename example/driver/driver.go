// Package driver is the command line plumbing shared by the example searches:
// .env + environment config, -v/-q/-workers flags and two optional positional
// arguments <corpus dir> <result dir>.
package driver

import (
	"errors"
	"flag"
	"fmt"
	"os"

	coha "github.com/echoface/coha_filter"
	"github.com/echoface/coha_filter/config"
	"github.com/joho/godotenv"
)

// SearchBuilder build the searches of one driver once the corpus is loaded
type SearchBuilder func(c *coha.Corpus) []*coha.Search

func Main(name string, build SearchBuilder) {
	err := run(name, os.Args[1:], build)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		coha.LogErr("%s: %v", name, err)
		os.Exit(1)
	}
	coha.LogInfo("all done")
}

func run(name string, args []string, build SearchBuilder) error {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	verbose := fset.Bool("v", false, "debug logging")
	quiet := fset.Bool("q", false, "only warnings and errors")
	workers := fset.Int("workers", cfg.Workers, "corpus files scanned in parallel")
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "usage: %s [flags] [corpus dir] [result dir]\n", name)
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return err
	}
	if fset.NArg() > 0 {
		cfg.CorpusDir = fset.Arg(0)
	}
	if fset.NArg() > 1 {
		cfg.ResultDir = fset.Arg(1)
	}

	coha.LogLevel = coha.ParseLogLevel(cfg.LogLevel)
	switch {
	case *verbose:
		coha.LogLevel = coha.DebugLevel
	case *quiet:
		coha.LogLevel = coha.WarnLevel
	}

	corpus, err := coha.Load(cfg.CorpusDir, coha.WithWorkers(*workers))
	if err != nil {
		return err
	}
	if coha.LogLevel <= coha.DebugLevel {
		coha.PrintCorpusInfo(corpus)
	}
	return corpus.Search(cfg.ResultDir, build(corpus)...)
}
