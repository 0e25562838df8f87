package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// CodeGenerator produces parcel security codes.
type CodeGenerator interface {
	NewCode() (string, error)
}

// RandomCodes draws codes from crypto/rand.
type RandomCodes struct{}

// NewRandomCodes returns the default CodeGenerator.
func NewRandomCodes() CodeGenerator { return RandomCodes{} }

// NewCode returns a uniformly random 6-digit decimal code in [100000, 999999].
func (RandomCodes) NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("could not generate security code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+codeMin), nil
}

// IsCode reports whether s has the 6 ASCII digit security code format.
func IsCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
