package types

import (
	"errors"
	"math/rand/v2"
	"strconv"
)

//go:generate go run ../../cmd/gen-types -pkg types -types MessageID,AttributeID -out types.gen.go

// TokenUpperBound is the exclusive upper bound of generated tokens.
const TokenUpperBound = 100_000

var ErrInvalidToken = errors.New("invalid token")

// newToken returns a short numeric token. Tokens only correlate list items within
// a session, collisions are tolerated.
func newToken() string {
	return strconv.Itoa(rand.IntN(TokenUpperBound)) //nolint:gosec // not a security token
}

func validateToken(s string) error {
	if s == "" {
		return ErrInvalidToken
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= TokenUpperBound || strconv.Itoa(n) != s {
		return ErrInvalidToken
	}
	return nil
}
