package hash

// Hasher hashes and verifies secrets (passwords and one-time codes).
// Plaintext secrets must never be stored; comparison is always done against
// the hash.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
