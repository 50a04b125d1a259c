package parser

import "strings"

// Tokenize splits input on runs of spaces and tabs. At most maxTokens-1
// tokens are returned; one slot of the argument vector is reserved, as for a
// NUL-terminated argv. Words past the limit are dropped.
func Tokenize(input string, maxTokens int) []string {
	if maxTokens < 2 {
		return nil
	}

	var tokens []string
	for _, tok := range strings.FieldsFunc(input, isDelimiter) {
		if len(tokens) == maxTokens-1 {
			break
		}
		tokens = append(tokens, strings.Clone(tok))
	}
	return tokens
}

func isDelimiter(r rune) bool {
	return r == ' ' || r == '\t'
}
