package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short url-safe identifier for public-facing keys
// (event share slugs, confirmation tokens).
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateConfirmationToken returns the one-shot token handed to a client
// when it opens a request confirmation dialog. Longer than GenerateID since
// the token is a bearer credential for the pending request.
func GenerateConfirmationToken() string {
	id, err := gonanoid.Generate(idAlphabet, 24)
	if err != nil {
		return ""
	}
	return id
}
