// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a
// single entity.
package service

// PasswordHasher defines the interface for credential hashing and
// verification. It abstracts the key-derivation algorithm, keeping the domain
// pure. The hash and salt are encoded independently so both can be stored as
// text columns.
type PasswordHasher interface {
	// Hash derives a verification token from a plaintext password using a
	// fresh random salt. Two calls with the same password yield different
	// hashes and different salts.
	Hash(password string) (hash, salt string, err error)

	// Verify recomputes the derived key from the candidate password and the
	// stored salt, and compares it to the stored hash in constant time.
	// Malformed salt or hash encodings verify as false; they never crash
	// authentication.
	Verify(password, salt, hash string) bool
}
