package coha_filter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

const (
	CorpusDir = "db"

	corpusFileExt = ".txt"
)

var corpusFileRegex = regexp.MustCompile(`^coha_db_(\d+s)\.txt$`)

type (
	// CorpusFile one per-decade token file, Identifier is the decade tag, eg: 1950s
	CorpusFile struct {
		Path       string
		Identifier string
	}

	CorpusFiles []*CorpusFile
)

func NewCorpusFile(path string) (*CorpusFile, error) {
	name := filepath.Base(path)
	caps := corpusFileRegex.FindStringSubmatch(name)
	if caps == nil {
		return nil, fmt.Errorf("%w: unexpected file name %s", ErrDiscovery, name)
	}
	return &CorpusFile{
		Path:       path,
		Identifier: caps[1],
	}, nil
}

// OutputName file name of this file's results for a search label
func (cf *CorpusFile) OutputName(label string) string {
	return fmt.Sprintf("%s-%s.csv", label, cf.Identifier)
}

// readCorpus collect token files one level below <root>/db, sorted by path
func readCorpus(rootDir string) (CorpusFiles, error) {
	path := filepath.Join(rootDir, CorpusDir)
	LogDebug("%s: reading...", path)

	subdirs, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
	}

	var paths []string
	for _, subdir := range subdirs {
		subPath := filepath.Join(path, subdir.Name())
		// stat instead of DirEntry.IsDir so symlinked decade dirs are kept
		info, err := os.Stat(subPath)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(subPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDiscovery, err)
		}
		for _, entry := range entries {
			if filepath.Ext(entry.Name()) != corpusFileExt {
				continue
			}
			paths = append(paths, filepath.Join(subPath, entry.Name()))
		}
	}
	sort.Strings(paths)
	LogInfo("%s: %d corpus files", path, len(paths))

	files := make(CorpusFiles, 0, len(paths))
	for _, p := range paths {
		cf, err := NewCorpusFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, cf)
	}
	return files, nil
}
