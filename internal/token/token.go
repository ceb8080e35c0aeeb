// Package token defines the lexical token kinds produced while scanning a
// GraphQL executable document.
package token

import "text/scanner"

const (
	EOF       = scanner.EOF
	BANG      = '!'
	DOLLAR    = '$'
	PAREN_L   = '('
	PAREN_R   = ')'
	SPREAD    = '.'
	COLON     = ':'
	EQUALS    = '='
	AT        = '@'
	BRACKET_L = '['
	BRACKET_R = ']'
	BRACE_L   = '{'
	BRACE_R   = '}'
	NAME      = scanner.Ident
	INT       = scanner.Int
	FLOAT     = scanner.Float
	STRING    = scanner.String
)

// Keywords recognized at the start of a definition.
const (
	QUERY        = "query"
	MUTATION     = "mutation"
	SUBSCRIPTION = "subscription"
	FRAGMENT     = "fragment"
	ON           = "on"
)
