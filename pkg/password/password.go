package password

import "golang.org/x/crypto/bcrypt"

// bcrypt cost 12: balance between security and login latency.
const hashCost = 12

// Hash returns the one-way salted hash of a plaintext password.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
// bcrypt.CompareHashAndPassword is a constant-time comparison.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
