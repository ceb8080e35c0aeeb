// Package lexer is a hand-written scanner over text/scanner, producing the
// token stream internal/gqlparser consumes. It mirrors the panic/recover
// syntax-error convention of a recursive-descent parser built directly on
// top of a scanner: a syntax error is a panic of type syntaxError, caught
// once at the top of Parse.
package lexer

import (
	"bytes"
	"fmt"
	"strings"
	"text/scanner"

	"github.com/romain-gilliotte/graphql-schema-infer/graphqlerr"
	"github.com/romain-gilliotte/graphql-schema-infer/internal/token"
)

type syntaxError string

// Lexer wraps a text/scanner.Scanner with GraphQL's whitespace/comment
// skipping rules (commas are insignificant whitespace, '#' starts a
// line comment).
type Lexer struct {
	scan *scanner.Scanner
	next rune
}

func New(source string) *Lexer {
	scan := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings,
	}
	scan.Init(strings.NewReader(source))
	return &Lexer{scan: scan}
}

// CatchSyntaxError runs fn, converting any syntaxError panic raised via
// SyntaxError into a *graphqlerr.Error. Any other panic propagates.
func (l *Lexer) CatchSyntaxError(fn func()) (err *graphqlerr.Error) {
	defer func() {
		if r := recover(); r != nil {
			if msg, ok := r.(syntaxError); ok {
				err = graphqlerr.New("Syntax Error: %s", string(msg))
				err.Locations = []graphqlerr.Location{l.Location()}
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

func (l *Lexer) Peek() rune { return l.next }

func (l *Lexer) TokenText() string { return l.scan.TokenText() }

func (l *Lexer) Location() graphqlerr.Location {
	return graphqlerr.Location{Line: l.scan.Line, Column: l.scan.Column}
}

// SkipWhitespace advances to the next significant token, skipping commas
// and '#' line comments along the way.
func (l *Lexer) SkipWhitespace() {
	for {
		l.next = l.scan.Scan()
		if l.next == ',' {
			continue
		}
		if l.next == '#' {
			l.skipComment()
			continue
		}
		break
	}
}

func (l *Lexer) skipComment() {
	var buf bytes.Buffer
	for {
		r := l.scan.Next()
		if r == '\r' || r == '\n' || r == scanner.EOF {
			break
		}
		buf.WriteRune(r)
	}
}

// Advance checks that the current token is the expected rune kind, then
// moves past it. Otherwise it raises a syntax error.
func (l *Lexer) Advance(expected rune) {
	if l.next != expected {
		l.unexpected(scanner.TokenString(expected))
		return
	}
	l.SkipWhitespace()
}

// AdvanceKeyword checks that the current token is the Ident `keyword`,
// then moves past it.
func (l *Lexer) AdvanceKeyword(keyword string) {
	if l.next != token.NAME || l.scan.TokenText() != keyword {
		l.unexpected(fmt.Sprintf("%q", keyword))
		return
	}
	l.SkipWhitespace()
}

func (l *Lexer) unexpected(expected string) {
	found := strings.TrimPrefix(l.scan.TokenText(), `"`)
	found = strings.TrimSuffix(found, `"`)
	l.SyntaxError(fmt.Sprintf("Expected %s, found %q.", expected, found))
}

func (l *Lexer) SyntaxError(message string) {
	panic(syntaxError(message))
}
