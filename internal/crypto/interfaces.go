package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
//
// The stored form is self-describing: salt and work factor are embedded in
// the hash string, so Verify needs nothing but the plaintext and the stored
// value.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Hashing the same plaintext
	// twice yields different strings.
	// Returns ErrPasswordTooLong for inputs the algorithm would truncate.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches stored. The comparison runs
	// in constant time. A malformed stored value yields false.
	Verify(plaintext, stored string) bool

	// Burn spends the same work as a Verify call and discards the result.
	// Callers use it when there is no stored hash to compare against, so
	// that a missing account costs as much time as a wrong password.
	Burn(plaintext string)
}
