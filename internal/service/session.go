package service

import (
	"context"
	"log/slog"

	"github.com/vaultpass/passgen-go/internal/clipboard"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

// Session holds the current generator options and the last generated password.
// It is not safe for concurrent use.
type Session struct {
	gen      *crypto.Generator
	copier   *clipboard.Copier
	opts     crypto.GeneratorOptions
	password string
}

// NewSession starts from crypto.DefaultOptions with no password.
func NewSession(gen *crypto.Generator, copier *clipboard.Copier) *Session {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	if copier == nil {
		copier = clipboard.NewCopier(nil)
	}
	return &Session{
		gen:    gen,
		copier: copier,
		opts:   crypto.DefaultOptions(),
	}
}

func (s *Session) Options() crypto.GeneratorOptions { return s.opts }

func (s *Session) Password() string { return s.password }

// SetLength changes the target length. Out-of-range values are rejected on Generate.
func (s *Session) SetLength(n int) {
	s.opts.Length = n
}

// SetClass switches a character class on or off.
func (s *Session) SetClass(c crypto.CharClass, on bool) {
	s.opts = s.opts.With(c, on)
}

// Strength rates the current options.
func (s *Session) Strength() crypto.StrengthLevel {
	return crypto.Score(s.opts)
}

// Generate replaces the current password. On error the previous password is kept.
func (s *Session) Generate() (string, crypto.StrengthLevel, error) {
	pw, err := s.gen.Generate(s.opts)
	if err != nil {
		return "", s.Strength(), err
	}
	s.password = pw

	level := s.Strength()
	slog.Debug("password generated", "length", len(pw), "strength", level)
	return pw, level, nil
}

// Copy puts the current password on the clipboard.
func (s *Session) Copy(ctx context.Context) error {
	return s.copier.Copy(ctx, s.password)
}
