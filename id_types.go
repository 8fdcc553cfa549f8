package coha_filter

import (
	"fmt"
)

const (
	// ContextSize number of tokens kept on each side of a hit, clipped at text boundaries
	ContextSize = 30

	MaxWordID = WordID(0xFFFFFFFF)
)

type (
	// TextID identify one source document, shared by the sources table and corpus rows
	TextID int

	// TokenID position of a token inside its text, strictly increasing within one text
	TokenID int

	// WordID index into the Lexicon, uint32 so it can be used as a bitmap value directly
	WordID uint32

	// Year publication year of a source
	Year uint16

	// Genre closed set of COHA genres: FIC|MAG|NEWS|NF
	Genre uint8
)

const (
	GenreFiction Genre = iota
	GenreMagazine
	GenreNews
	GenreNonFiction
)

var genreCodes = [...]string{
	GenreFiction:    "FIC",
	GenreMagazine:   "MAG",
	GenreNews:       "NEWS",
	GenreNonFiction: "NF",
}

// ParseGenre map a genre code as it appears in the sources table
func ParseGenre(s string) (Genre, bool) {
	for g, code := range genreCodes {
		if code == s {
			return Genre(g), true
		}
	}
	return 0, false
}

func (g Genre) String() string {
	if int(g) < len(genreCodes) {
		return genreCodes[g]
	}
	return fmt.Sprintf("Genre(%d)", uint8(g))
}

func (id TextID) String() string {
	return fmt.Sprintf("%d", int(id))
}

func (id WordID) String() string {
	return fmt.Sprintf("%d", uint32(id))
}
