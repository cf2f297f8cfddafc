package validators

import (
	"errors"
	"strings"
)

var (
	ErrPasswordTooLong = errors.New("password is too long")
	ErrPasswordEmpty   = errors.New("no password provided")
)

func PasswordValidator(p string) error {
	if strings.TrimSpace(p) == "" {
		return ErrPasswordEmpty
	}

	// bcrypt ignores everything past 72 bytes
	if len(p) > 72 {
		return ErrPasswordTooLong
	}

	return nil
}
