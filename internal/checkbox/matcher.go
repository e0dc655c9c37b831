package checkbox

import (
	"regexp"
	"strings"
)

var (
	tokenRe   = regexp.MustCompile(TokenPattern)
	controlRe = regexp.MustCompile(ControlPattern)
)

// IsCheckboxInTableRow reports whether line holds a checkbox token between
// two unescaped '|' cell delimiters. Leading block-quote markers are allowed
// since only the delimiters around the token matter.
func IsCheckboxInTableRow(line string) bool {
	return len(tableTokens(line)) > 0
}

// ExtractCheckboxToken returns the first checkbox token that sits inside a
// table cell of line.
func ExtractCheckboxToken(line string) (Token, error) {
	tokens := tableTokens(line)
	if len(tokens) == 0 {
		return Token{}, ErrNotFound
	}
	return tokens[0], nil
}

// TokenEndingAt returns the table-embedded token whose end is exactly the
// byte offset end. It is how a just-typed ']' is tied to its token.
func TokenEndingAt(line string, end int) (Token, error) {
	for _, t := range tableTokens(line) {
		if t.End == end {
			return t, nil
		}
	}
	return Token{}, ErrNotFound
}

// ExtractIdentifier parses the identifier out of a control tag.
func ExtractIdentifier(tag string) (string, error) {
	m := controlRe.FindStringSubmatch(tag)
	if len(m) != 3 {
		return "", ErrNotFound
	}
	return m[2], nil
}

func tableTokens(line string) []Token {
	if strings.IndexByte(line, cellDelimiter) < 0 {
		return nil
	}
	pipes := delimiters(line)
	if len(pipes) < 2 {
		return nil
	}

	var tokens []Token
	for _, loc := range tokenRe.FindAllStringIndex(line, -1) {
		if pipes[0] < loc[0] && pipes[len(pipes)-1] >= loc[1] {
			tokens = append(tokens, Token{Text: line[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
		}
	}
	return tokens
}

// delimiters returns the byte offsets of every unescaped '|' in line.
// A pipe preceded by an odd run of backslashes is escaped.
func delimiters(line string) []int {
	var out []int
	for i := 0; i < len(line); i++ {
		if line[i] != cellDelimiter {
			continue
		}
		slashes := 0
		for j := i - 1; j >= 0 && line[j] == escapeChar; j-- {
			slashes++
		}
		if slashes%2 == 0 {
			out = append(out, i)
		}
	}
	return out
}
