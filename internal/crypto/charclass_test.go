package crypto

import "testing"

func TestParseCharClass(t *testing.T) {
	tests := map[string]CharClass{
		"uppercase": Uppercase,
		"Lower":     Lowercase,
		" digits ":  Digit,
		"n":         Digit,
		"symbols":   Symbol,
	}
	for in, want := range tests {
		got, err := ParseCharClass(in)
		if err != nil {
			t.Errorf("ParseCharClass(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCharClass(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseCharClass("emoji"); err == nil {
		t.Error("ParseCharClass() expected error for unknown class")
	}
}

func TestCharClassSampleStaysInAlphabet(t *testing.T) {
	src := NewMathSource(7)
	for _, c := range AllClasses() {
		for i := 0; i < 200; i++ {
			ch, err := c.Sample(src)
			if err != nil {
				t.Fatalf("Sample() unexpected error: %v", err)
			}
			if !c.Contains(rune(ch)) {
				t.Fatalf("%s sampled %q outside its alphabet", c, ch)
			}
		}
	}
}

func TestCharClassUnknown(t *testing.T) {
	c := CharClass(9)
	if c.Alphabet() != "" {
		t.Errorf("Alphabet() = %q, want empty", c.Alphabet())
	}
	if _, err := c.Sample(CryptoSource{}); err == nil {
		t.Error("Sample() expected error for unknown class")
	}
}

func TestSourceRejectsNonPositiveBound(t *testing.T) {
	if _, err := (CryptoSource{}).Intn(0); err != ErrInvalidBound {
		t.Errorf("CryptoSource.Intn(0) error = %v, want %v", err, ErrInvalidBound)
	}
	if _, err := NewMathSource(1).Intn(-1); err != ErrInvalidBound {
		t.Errorf("MathSource.Intn(-1) error = %v, want %v", err, ErrInvalidBound)
	}
}
