package service

// PasswordService turns plaintext passwords into a stored representation and
// checks candidates against it. Encoded values are self-describing, so policy
// changes never invalidate old hashes.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}
