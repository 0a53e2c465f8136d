package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("Hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "secret1") {
		t.Error("Expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("Expected wrong password to be rejected")
	}
	if CheckPassword("not-a-hash", "secret1") {
		t.Error("Expected malformed hash to be rejected")
	}
}
