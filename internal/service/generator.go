package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const MaxCount = 50

var ErrCountTooLarge = errors.New("count must be at most 50")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService. A nil generator draws from crypto/rand.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces one or more passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := OptionsFromRequest(req)

	count := req.Count
	if count < 1 {
		count = 1
	}
	if count > MaxCount {
		return model.GenerateResponse{}, &crypto.ConfigurationError{Field: "count", Err: ErrCountTooLarge}
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := s.gen.Generate(opts)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		passwords = append(passwords, pw)
	}

	level := crypto.Score(opts)
	resp := model.GenerateResponse{
		Password: passwords[0],
		Length:   len(passwords[0]),
		Strength: level,
		Color:    level.Color(),
	}
	if count > 1 {
		resp.Passwords = passwords
	}

	if req.Hash {
		resp.Hashes = make([]string, 0, len(passwords))
		for _, pw := range passwords {
			h, err := crypto.HashPassword(pw)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
			}
			resp.Hashes = append(resp.Hashes, h)
		}
	}

	return resp, nil
}

// Strength rates the requested configuration without generating anything.
// A configuration with no class enabled rates weak; only the length is checked.
func (s *GeneratorService) Strength(req model.StrengthRequest) (model.StrengthResponse, error) {
	opts := OptionsFromRequest(req)
	switch {
	case opts.Length < crypto.MinLength:
		return model.StrengthResponse{}, &crypto.ConfigurationError{Field: "length", Err: crypto.ErrLengthTooShort}
	case opts.Length > crypto.MaxLength:
		return model.StrengthResponse{}, &crypto.ConfigurationError{Field: "length", Err: crypto.ErrLengthTooLong}
	}

	level := crypto.Score(opts)
	return model.StrengthResponse{
		Strength: level,
		Color:    level.Color(),
		Length:   opts.Length,
	}, nil
}

// OptionsFromRequest fills unset request fields from crypto.DefaultOptions.
func OptionsFromRequest(req model.GenerateRequest) crypto.GeneratorOptions {
	def := crypto.DefaultOptions()
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, def.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, def.Lowercase),
		Numbers:   boolOrDefault(req.Numbers, def.Numbers),
		Symbols:   boolOrDefault(req.Symbols, def.Symbols),
	}

	if opts.Length == 0 {
		opts.Length = def.Length
	}
	return opts
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
