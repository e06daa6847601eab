package app

import "unicode"

const MaxNameLength = 20

// NameEntry collects a player name one key at a time. Only letters, digits and spaces
// are taken, up to MaxNameLength runes.
type NameEntry struct {
	runes []rune
}

func (n *NameEntry) Type(r rune) bool {
	if len(n.runes) >= MaxNameLength {
		return false
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' {
		return false
	}
	n.runes = append(n.runes, r)
	return true
}

func (n *NameEntry) Erase() {
	if len(n.runes) > 0 {
		n.runes = n.runes[:len(n.runes)-1]
	}
}

func (n *NameEntry) Reset() {
	n.runes = n.runes[:0]
}

func (n *NameEntry) String() string {
	return string(n.runes)
}
