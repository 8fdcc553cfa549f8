package coha_filter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/echoface/coha_filter/parser"
)

const SourcesFile = "shared/coha_sources.utf8.txt"

// sourcesHeader column names exactly as shipped, including the padded " # words "
var sourcesHeader = []string{
	"textID",
	" # words ",
	"genre",
	"year",
	"title",
	"author",
	"Publication information",
	"Library of Congress classification (NF)",
	"FIXED",
}

type (
	// Source bibliographic record of one text
	Source struct {
		TextID TextID
		Genre  Genre
		Year   Year
		Title  string
		Author string
	}

	Sources map[TextID]*Source
)

func parseSource(path, line string) (*Source, error) {
	fields := parser.NewFieldCursor(path, line)

	textID, err := fields.Int()
	if err != nil {
		return nil, err
	}
	if err = fields.Skip(); err != nil { // # words
		return nil, err
	}
	code, err := fields.Next()
	if err != nil {
		return nil, err
	}
	genre, ok := ParseGenre(code)
	if !ok {
		return nil, parser.NewTSVError(path, "invalid genre: %s", code)
	}
	year, err := fields.Uint16()
	if err != nil {
		return nil, err
	}
	title, err := fields.Next()
	if err != nil {
		return nil, err
	}
	author, err := fields.Next()
	if err != nil {
		return nil, err
	}
	return &Source{
		TextID: TextID(textID),
		Genre:  genre,
		Year:   Year(year),
		Title:  title,
		Author: author,
	}, nil
}

func readSources(rootDir string) (Sources, error) {
	path := filepath.Join(rootDir, SourcesFile)
	LogDebug("%s: reading...", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	sc := parser.NewScanner(file)
	if err = parser.CheckHeader(path, sc, sourcesHeader); err != nil {
		return nil, err
	}

	sources := make(Sources)
	for sc.Scan() {
		source, err := parseSource(path, sc.Text())
		if err != nil {
			return nil, err
		}
		sources[source.TextID] = source
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	LogInfo("%s: %d sources", path, len(sources))
	return sources, nil
}
