package coha_filter

import "github.com/echoface/coha_filter/parser"

// Token one row of a corpus file
type Token struct {
	TextID  TextID
	TokenID TokenID
	WordID  WordID
}

func parseToken(path, line string) (Token, error) {
	fields := parser.NewFieldCursor(path, line)

	textID, err := fields.Int()
	if err != nil {
		return Token{}, err
	}
	tokenID, err := fields.Int()
	if err != nil {
		return Token{}, err
	}
	wordID, err := fields.Uint32()
	if err != nil {
		return Token{}, err
	}
	return Token{
		TextID:  TextID(textID),
		TokenID: TokenID(tokenID),
		WordID:  WordID(wordID),
	}, nil
}
