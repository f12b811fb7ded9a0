// Package textparse provides the low-level scanning primitives the game
// log and feed grammars are built from. A Scanner is a plain value over
// an input string; grammars backtrack by saving and restoring the value,
// so failed alternatives leave no trace.
package textparse

import (
	"strconv"
	"strings"
)

// Scanner walks an input string left to right. The zero cost of copying
// the value is what makes alternation cheap: take a copy, try a branch,
// and on failure keep scanning from the copy.
type Scanner struct {
	src string
	pos int
}

func New(src string) Scanner {
	return Scanner{src: src}
}

// Rest returns the unconsumed remainder of the input.
func (s Scanner) Rest() string { return s.src[s.pos:] }

// Pos returns the byte offset of the next unread character.
func (s Scanner) Pos() int { return s.pos }

// Done reports whether the whole input has been consumed.
func (s Scanner) Done() bool { return s.pos >= len(s.src) }

// Skip consumes n bytes unconditionally. Callers compute n against
// Rest, so skipping past the end is a bug; it is clamped regardless.
func (s *Scanner) Skip(n int) {
	s.pos += n
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
}

// Tag consumes lit if the input continues with it.
func (s *Scanner) Tag(lit string) bool {
	if strings.HasPrefix(s.Rest(), lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// OneOf consumes the first of lits that matches and returns it.
func (s *Scanner) OneOf(lits ...string) (string, bool) {
	for _, lit := range lits {
		if s.Tag(lit) {
			return lit, true
		}
	}
	return "", false
}

// Until consumes input up to the next occurrence of stop, returning the
// consumed prefix. The stop itself is also consumed.
func (s *Scanner) Until(stop string) (string, bool) {
	i := strings.Index(s.Rest(), stop)
	if i < 0 {
		return "", false
	}
	out := s.Rest()[:i]
	s.pos += i + len(stop)
	return out, true
}

// Peek reports whether the input continues with lit, without consuming.
func (s Scanner) Peek(lit string) bool {
	return strings.HasPrefix(s.Rest(), lit)
}

// Int consumes a run of ASCII digits and returns its value. Leading
// signs are not accepted; the grammars never produce them.
func (s *Scanner) Int() (int, bool) {
	rest := s.Rest()
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(rest[:n])
	if err != nil {
		return 0, false
	}
	s.pos += n
	return v, true
}

// Word consumes up to the next space, or to the end of input. The space
// is consumed but not included. Fails on an empty word.
func (s *Scanner) Word() (string, bool) {
	rest := s.Rest()
	if rest == "" {
		return "", false
	}
	i := strings.IndexByte(rest, ' ')
	if i == 0 {
		return "", false
	}
	if i < 0 {
		s.pos = len(s.src)
		return rest, true
	}
	s.pos += i + 1
	return rest[:i], true
}

// TakeRest consumes and returns everything remaining.
func (s *Scanner) TakeRest() string {
	out := s.Rest()
	s.pos = len(s.src)
	return out
}

// Emoji consumes a single emoji token: the run of non-space characters
// before the next space. Emoji here means whatever symbol the upstream
// sim put in front of a team or item name, so no Unicode-class check is
// attempted.
func (s *Scanner) Emoji() (string, bool) {
	save := *s
	w, ok := s.Word()
	if !ok || w == "" {
		*s = save
		return "", false
	}
	// A token containing ASCII letters or digits is a name fragment, not
	// an emoji.
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 0x80 {
			*s = save
			return "", false
		}
	}
	return w, true
}

// Ordinal consumes an inning ordinal like "1st", "2nd", "11th" and
// returns the number. The suffix must agree with the number.
func (s *Scanner) Ordinal() (int, bool) {
	save := *s
	n, ok := s.Int()
	if !ok {
		return 0, false
	}
	if !s.Tag(OrdinalSuffix(n)) {
		*s = save
		return 0, false
	}
	return n, true
}

// OrdinalSuffix returns the English ordinal suffix for n.
func OrdinalSuffix(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return "th"
	case n%10 == 1:
		return "st"
	case n%10 == 2:
		return "nd"
	case n%10 == 3:
		return "rd"
	}
	return "th"
}

// AnyOfNames consumes the longest of names that prefixes the input,
// followed by any of the given stops. This is how name slots resolve:
// the candidate set comes from game context, never from guessing at
// word shapes, so an unknown name simply fails the grammar.
func (s *Scanner) AnyOfNames(names []string, stops ...string) (string, bool) {
	best := ""
	rest := s.Rest()
	for _, name := range names {
		if len(name) <= len(best) || !strings.HasPrefix(rest, name) {
			continue
		}
		after := rest[len(name):]
		if len(stops) == 0 {
			best = name
			continue
		}
		for _, stop := range stops {
			if strings.HasPrefix(after, stop) {
				best = name
				break
			}
		}
	}
	if best == "" {
		return "", false
	}
	s.pos += len(best)
	return best, true
}
