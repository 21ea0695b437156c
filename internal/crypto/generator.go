package crypto

import (
	"errors"
	"fmt"
)

const (
	MinLength     = 1
	MaxLength     = 20
	DefaultLength = 10
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 1")
	ErrLengthTooLong    = errors.New("password length must be at most 20")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
)

// ConfigurationError reports options that cannot produce a password.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns the initial generator state: 10 characters, uppercase only.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
	}
}

// Classes returns the enabled character classes in a fixed order.
func (o GeneratorOptions) Classes() []CharClass {
	var classes []CharClass
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Numbers {
		classes = append(classes, Digit)
	}
	if o.Symbols {
		classes = append(classes, Symbol)
	}
	return classes
}

// Has reports whether class c is enabled.
func (o GeneratorOptions) Has(c CharClass) bool {
	switch c {
	case Uppercase:
		return o.Uppercase
	case Lowercase:
		return o.Lowercase
	case Digit:
		return o.Numbers
	case Symbol:
		return o.Symbols
	}
	return false
}

// With returns a copy of o with class c switched on or off.
func (o GeneratorOptions) With(c CharClass, on bool) GeneratorOptions {
	switch c {
	case Uppercase:
		o.Uppercase = on
	case Lowercase:
		o.Lowercase = on
	case Digit:
		o.Numbers = on
	case Symbol:
		o.Symbols = on
	}
	return o
}

// Validate checks that o can produce a password.
func (o GeneratorOptions) Validate() error {
	if len(o.Classes()) == 0 {
		return &ConfigurationError{Field: "character types", Err: ErrNoCharacterTypes}
	}
	if o.Length < MinLength {
		return &ConfigurationError{Field: "length", Err: ErrLengthTooShort}
	}
	if o.Length > MaxLength {
		return &ConfigurationError{Field: "length", Err: ErrLengthTooLong}
	}
	return nil
}

// Generator produces passwords from a random Source.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src uses crypto/rand.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate creates a random password with crypto/rand.
func Generate(opts GeneratorOptions) (string, error) {
	return NewGenerator(nil).Generate(opts)
}

// Generate creates a password of exactly opts.Length characters. When the
// length allows it, every enabled class is represented at least once.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	classes := opts.Classes()

	size := max(opts.Length, len(classes))
	result := make([]byte, 0, size)

	// One representative per enabled class.
	for _, c := range classes {
		ch, err := c.Sample(g.src)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	for len(result) < opts.Length {
		i, err := g.src.Intn(len(classes))
		if err != nil {
			return "", err
		}
		ch, err := classes[i].Sample(g.src)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	if err := shuffle(g.src, result); err != nil {
		return "", err
	}

	// Shorter than the class count: keep a random subset of representatives.
	return string(result[:opts.Length]), nil
}

// shuffle performs a Fisher-Yates shuffle.
func shuffle(src Source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
