package repository

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	inviteCodeLength  = 8
	inviteCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// generateInviteCode produces a random 8-character token from the
// invite charset using crypto/rand.
func generateInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeCharset))))
		if err != nil {
			return "", fmt.Errorf("random int: %w", err)
		}
		code[i] = inviteCodeCharset[n.Int64()]
	}
	return string(code), nil
}

// uniqueInviteCode generates a code not yet present in the invite
// index.  Callers must hold the store mutex.  Collisions are vanishingly
// rare at 62^8; the retry bound keeps the loop finite regardless.
func (s *Store) uniqueInviteCode() (string, error) {
	for i := 0; i < 10; i++ {
		code, err := generateInviteCode()
		if err != nil {
			return "", err
		}
		if _, taken := s.byInvite[code]; !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique invite code after 10 attempts")
}
