package query

import "strings"

type matcher struct {
	raw   string
	lower string
}

func newMatcher(term string) matcher {
	term = strings.TrimSpace(term)
	return matcher{raw: term, lower: strings.ToLower(term)}
}

func (m matcher) empty() bool { return m.raw == "" }

// fold is a case-insensitive substring match.
func (m matcher) fold(field string) bool {
	return strings.Contains(strings.ToLower(field), m.lower)
}

// exact is a case-sensitive substring match.
func (m matcher) exact(field string) bool {
	return strings.Contains(field, m.raw)
}
