package encode

import "golang.org/x/crypto/bcrypt"

// DefaultSecretCost is the bcrypt cost used for stored account secrets.
const DefaultSecretCost = 10

// SecretHasher is the one-way hashing collaborator of the account service.
// Verify must compare in constant time.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) bool
}

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: DefaultSecretCost}
}

// Hash salts per call; two hashes of the same secret differ.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(secret), h.Cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
