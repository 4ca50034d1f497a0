package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from plaintext. The output is
// self-describing (it embeds the salt and cost), so verification needs no
// side-channel lookup.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison inside bcrypt is constant-time.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
