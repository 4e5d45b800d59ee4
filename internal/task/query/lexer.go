package query

import (
	"strings"
	"unicode"
)

// token is one search term: an attribute with a value, or free text when
// attr is empty.
type token struct {
	attr  string
	value string
}

// tokenize splits text on whitespace. Double quotes group words into one
// value, both for free text and after an attribute ("column:\"In progress\"").
func tokenize(text string) []token {
	var (
		tokens  []token
		current strings.Builder
		quoted  bool
		started bool
	)

	flush := func() {
		if !started {
			return
		}
		tokens = append(tokens, split(current.String()))
		current.Reset()
		started = false
	}

	for _, r := range text {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	out := tokens[:0]
	for _, t := range tokens {
		if t.value != "" || t.attr != "" {
			out = append(out, t)
		}
	}
	return out
}

// split separates a known attribute prefix from its value. Unknown
// prefixes stay free text.
func split(raw string) token {
	i := strings.IndexByte(raw, ':')
	if i <= 0 {
		return token{value: raw}
	}
	attr := strings.ToLower(raw[:i])
	if _, ok := attributes[attr]; !ok {
		return token{value: raw}
	}
	return token{attr: attr, value: raw[i+1:]}
}
