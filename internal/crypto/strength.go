package crypto

import (
	"fmt"
	"strings"
)

// StrengthLevel is a coarse rating of generator options.
type StrengthLevel int

const (
	Weak StrengthLevel = iota
	Medium
	Strong
)

func (s StrengthLevel) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	}
	return fmt.Sprintf("StrengthLevel(%d)", int(s))
}

// Color is the indicator colour shown next to a rating.
func (s StrengthLevel) Color() string {
	switch s {
	case Strong:
		return "green"
	case Medium:
		return "yellow"
	}
	return "red"
}

func (s StrengthLevel) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *StrengthLevel) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "weak":
		*s = Weak
	case "medium":
		*s = Medium
	case "strong":
		*s = Strong
	default:
		return fmt.Errorf("unknown strength level %q", text)
	}
	return nil
}

// Score rates opts. It looks only at the options, never at a generated password.
func Score(opts GeneratorOptions) StrengthLevel {
	hasExtra := opts.Numbers || opts.Symbols

	switch {
	case opts.Uppercase && opts.Lowercase && hasExtra && opts.Length >= 8:
		return Strong
	case (opts.Uppercase || opts.Lowercase) && hasExtra && opts.Length >= 6:
		return Medium
	default:
		return Weak
	}
}
