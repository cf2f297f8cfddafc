package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash wraps bcrypt so the cost lives in one place
type PasswordHash struct {
	Cost int
}

func NewPasswordHash() *PasswordHash {
	return &PasswordHash{
		Cost: bcrypt.DefaultCost,
	}
}

func (p *PasswordHash) Generate(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify compares a plaintext password with a stored hash. A mismatch is
// reported through ok, any other bcrypt failure through err.
func (p *PasswordHash) Verify(password, hash string) (ok bool, err error) {
	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
