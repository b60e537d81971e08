package security

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of raw. Every call draws a new salt, so
// hashing the same password twice gives two different strings.
func HashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(raw, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
