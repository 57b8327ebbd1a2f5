package authenticating

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	allChars     = lowerChars + upperChars + numberChars + specialChars

	minPasswordLength = 8
)

// generateStrongPassword gera uma senha com ao menos um caractere de cada
// classe, embaralhada com crypto/rand.
func generateStrongPassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	password := make([]byte, 0, length)
	for _, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		c, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige ao menos 8 caracteres com maiúsculas,
// minúsculas, números e caracteres especiais.
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	case !hasLower:
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	case !hasNumber:
		return errors.New("a senha deve conter pelo menos um número")
	case !hasSpecial:
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}
	return nil
}
