package textparse

import "strings"

// ValidName accepts the player and team name shapes the sim generates.
// The one structural rule that matters is the trailing word: a name
// cannot end on a bare abbreviation or initial, which is how
// "Bob E. Quiros" avoids being cut at the "E".
func ValidName(s string) bool {
	if s == "" || strings.Contains(s, "<") || strings.Contains(s, ">") {
		return false
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return false
	}
	words := strings.Split(s, " ")
	for _, w := range words {
		if w == "" {
			return false
		}
	}
	return !danglingWord(words[len(words)-1])
}

// danglingWord reports whether a name-final word demands a following
// period: honorifics like "Dr" and single-letter initials. Roman-numeral
// suffixes ("Stanley Demir I") are legitimate name endings.
func danglingWord(w string) bool {
	switch w {
	case "Dr", "Mr", "Mrs", "Ms", "Jr", "Sr", "St", "Prof":
		return true
	case "I", "V", "X":
		return false
	}
	return len(w) == 1 && w[0] >= 'A' && w[0] <= 'Z'
}
