package application

import (
	"golang.org/x/crypto/bcrypt"
)

// hashPassword generates a salted bcrypt hash of the password.
func hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// verifyPassword compares a password with its stored hash.
func verifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
