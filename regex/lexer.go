package regex

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Every rule matches exactly one rune, so a token's index in the stream is
// also its character position in the pattern.
var lexDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "QMark", Pattern: `\?`},
	{Name: "Bar", Pattern: `\|`},
	{Name: "Empty", Pattern: `ε`},
	{Name: "EmptySet", Pattern: `∅`},
	{Name: "Symbol", Pattern: `[^()*+?|ε∅]`},
})

type tokenType int

const (
	tEOF tokenType = iota
	tLParen
	tRParen
	tStar
	tPlus
	tQMark
	tUnion
	tEmpty
	tEmptySet
	tSymbol
)

type token struct {
	typ tokenType
	ch  rune
}

var tokenTypes = func() map[lexer.TokenType]tokenType {
	sym := lexDef.Symbols()
	return map[lexer.TokenType]tokenType{
		lexer.EOF:       tEOF,
		sym["LParen"]:   tLParen,
		sym["RParen"]:   tRParen,
		sym["Star"]:     tStar,
		sym["Plus"]:     tPlus,
		sym["QMark"]:    tQMark,
		sym["Bar"]:      tUnion,
		sym["Empty"]:    tEmpty,
		sym["EmptySet"]: tEmptySet,
		sym["Symbol"]:   tSymbol,
	}
}()

// tokenize splits a pattern into one token per rune followed by tEOF.
func tokenize(pattern string) ([]token, error) {
	lex, err := lexDef.Lex("", strings.NewReader(pattern))
	if err != nil {
		return nil, err
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	out := make([]token, 0, len(raw))
	for _, t := range raw {
		typ, ok := tokenTypes[t.Type]
		if !ok {
			continue
		}
		if typ == tEOF {
			break
		}
		r, _ := utf8.DecodeRuneInString(t.Value)
		out = append(out, token{typ: typ, ch: r})
	}
	return append(out, token{typ: tEOF}), nil
}
