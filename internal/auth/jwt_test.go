package auth

import (
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", TokenTTL)

	t.Run("roundtrip carries user id", func(t *testing.T) {
		token, err := m.Generate(42)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if token == "" {
			t.Fatal("Expected a non-empty token")
		}

		claims, err := m.Parse(token)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("Expected user id 42, got %d", claims.UserID)
		}
		if claims.ID == "" {
			t.Error("Expected a jti to be set")
		}
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", TokenTTL)
		token, err := other.Generate(7)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := m.Parse(token); err == nil {
			t.Error("Expected parse to fail for foreign signature")
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(7)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if _, err := m.Parse(token); err == nil {
			t.Error("Expected parse to fail for expired token")
		}
	})
}
