package model

import "github.com/vaultpass/passgen-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count,omitempty"`
	Hash      bool  `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response. Passwords and
// Hashes are only set when more than one password or a hash was requested.
type GenerateResponse struct {
	Password  string               `json:"password"`
	Passwords []string             `json:"passwords,omitempty"`
	Hashes    []string             `json:"hashes,omitempty"`
	Length    int                  `json:"length"`
	Strength  crypto.StrengthLevel `json:"strength"`
	Color     string               `json:"color"`
}

// StrengthRequest asks for the rating of a configuration.
type StrengthRequest = GenerateRequest

// StrengthResponse carries the rating of a configuration.
type StrengthResponse struct {
	Strength crypto.StrengthLevel `json:"strength"`
	Color    string               `json:"color"`
	Length   int                  `json:"length"`
}
