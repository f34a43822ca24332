package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the original deployment; adaptive and salted per hash.
const bcryptCost = 10

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// bcrypt's comparison is resistant to timing side-channels.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
