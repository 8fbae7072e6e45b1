package usecase

import (
	"math/rand"
)

const codeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	codeLength      = 6
	maxCodeAttempts = 10
)

// GenerateCode returns a random short code of n characters
func GenerateCode(n int, src rand.Source) string {
	r := rand.New(src)
	b := make([]byte, n)
	for i := range b {
		b[i] = codeChars[r.Intn(len(codeChars))]
	}
	return string(b)
}
