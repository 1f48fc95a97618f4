package security

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// ReadableAlphabet omits characters that are easy to confuse when read aloud
// or copied from a terminal (0/O, 1/l/I).
const ReadableAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// MinTemporaryPasswordLength is the floor applied by TemporaryPassword.
const MinTemporaryPasswordLength = 8

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errLargeAlphabet  = errors.New("alphabet must not exceed 256 characters")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Bytes at or above the largest multiple of len(alphabet) are
// rejected so no character is favored.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	case len(alphabet) > 256:
		return "", errLargeAlphabet
	}

	size := len(alphabet)
	ceiling := 256 - 256%size
	value := make([]byte, 0, length)
	buffer := make([]byte, length+length/2+1)
	for len(value) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buffer {
			if int(b) >= ceiling {
				continue
			}
			value = append(value, alphabet[int(b)%size])
			if len(value) == length {
				break
			}
		}
	}
	return string(value), nil
}

// TemporaryPassword returns a readable random password of at least
// MinTemporaryPasswordLength characters.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}
	return RandomString(length, ReadableAlphabet)
}
