package crypto

import (
	"fmt"
	"strings"
)

// CharClass identifies one of the alphabets a password can draw from.
type CharClass int

const (
	Uppercase CharClass = iota
	Lowercase
	Digit
	Symbol
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "123456789"
	symbolChars    = "~`!@#$%^&*()_-+={[}]|:;\"<,>.?/"
)

var alphabets = [...]string{
	Uppercase: uppercaseChars,
	Lowercase: lowercaseChars,
	Digit:     numberChars,
	Symbol:    symbolChars,
}

var classNames = [...]string{
	Uppercase: "uppercase",
	Lowercase: "lowercase",
	Digit:     "numbers",
	Symbol:    "symbols",
}

// AllClasses lists every character class in generation order.
func AllClasses() []CharClass {
	return []CharClass{Uppercase, Lowercase, Digit, Symbol}
}

// ParseCharClass accepts the class names used by the API and CLI.
func ParseCharClass(s string) (CharClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uppercase", "upper", "u":
		return Uppercase, nil
	case "lowercase", "lower", "l":
		return Lowercase, nil
	case "numbers", "number", "digits", "digit", "n":
		return Digit, nil
	case "symbols", "symbol", "s":
		return Symbol, nil
	}
	return 0, fmt.Errorf("unknown character class %q", s)
}

func (c CharClass) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("CharClass(%d)", int(c))
	}
	return classNames[c]
}

// Alphabet returns the characters c samples from.
func (c CharClass) Alphabet() string {
	if c < 0 || int(c) >= len(alphabets) {
		return ""
	}
	return alphabets[c]
}

// Contains reports whether ch belongs to c.
func (c CharClass) Contains(ch rune) bool {
	return strings.ContainsRune(c.Alphabet(), ch)
}

// Sample picks one character of c uniformly.
func (c CharClass) Sample(src Source) (byte, error) {
	alphabet := c.Alphabet()
	if alphabet == "" {
		return 0, fmt.Errorf("sample %s: empty alphabet", c)
	}
	i, err := src.Intn(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[i], nil
}
