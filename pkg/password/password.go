package password

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MinLength — минимальная длина пароля в символах.
const MinLength = 8

// Ошибки проверки сложности пароля.
var (
	ErrTooShort   = errors.New("password is too short")
	ErrAllNumeric = errors.New("password is entirely numeric")
)

// Validate проверяет минимальные требования к паролю до хеширования.
func Validate(password string) error {
	if utf8.RuneCountInString(password) < MinLength {
		return ErrTooShort
	}
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return nil
		}
	}
	return ErrAllNumeric
}

// Hash хеширует пароль через bcrypt.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare возвращает nil, если password соответствует hash.
func Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
