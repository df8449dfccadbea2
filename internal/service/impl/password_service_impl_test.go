package impl

import (
	"errors"
	"strings"
	"testing"
)

func TestPasswordHashAndVerify(t *testing.T) {
	svc := NewPasswordServiceArgon2id()

	encoded, err := svc.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected encoding prefix: %q", encoded)
	}
	if !svc.Verify("correct horse battery staple", encoded) {
		t.Fatal("verify rejected the original password")
	}
	if svc.Verify("correct horse battery stapler", encoded) {
		t.Fatal("verify accepted a wrong password")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	svc := NewPasswordServiceArgon2id()

	a, err := svc.Hash("same input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := svc.Hash("same input")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password are identical")
	}
	if !svc.Verify("same input", a) || !svc.Verify("same input", b) {
		t.Fatal("both hashes should verify")
	}
}

func TestPasswordHashEmpty(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	if _, err := svc.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestPasswordVerifyMalformed(t *testing.T) {
	svc := NewPasswordServiceArgon2id()

	encoded, err := svc.Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	cases := []string{
		"",
		"not-an-encoded-hash",
		"$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=1$!!notbase64!!$aGFzaA",
		strings.TrimSuffix(encoded, encoded[len(encoded)-4:]),
	}
	for _, enc := range cases {
		if svc.Verify("pw", enc) {
			t.Errorf("verify accepted malformed encoding %q", enc)
		}
	}
	if svc.Verify("", encoded) {
		t.Error("verify accepted the empty password")
	}
}
