package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of the given password. The salt and
// cost factor are embedded in the digest.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether the password matches the digest. A mismatch
// is a normal false result, never an error.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
