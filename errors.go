package coha_filter

import (
	"errors"

	"github.com/echoface/coha_filter/parser"
)

// ParseError structural error of a sources/lexicon/corpus file, carry the offending path
type ParseError = parser.TSVError

var (
	ErrDiscovery    = errors.New("corpus file discovery failed")
	ErrEmptySearch  = errors.New("search has no filters")
	ErrInvalidLabel = errors.New("invalid search label")
	ErrNilFilter    = errors.New("search has a nil filter")
)
