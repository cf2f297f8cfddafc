package validators

import (
	"errors"
	"strings"
)

var (
	ErrUsernameEmpty   = errors.New("no username provided")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrFullNameEmpty   = errors.New("no full name provided")
)

func UsernameValidator(u string) error {
	if strings.TrimSpace(u) == "" {
		return ErrUsernameEmpty
	}

	if len(u) > 64 {
		return ErrUsernameTooLong
	}

	return nil
}

func FullNameValidator(n string) error {
	if strings.TrimSpace(n) == "" {
		return ErrFullNameEmpty
	}

	return nil
}
