package auth

import (
	"testing"
	"time"

	"crm_backend/internal/models"
)

var testUser = &models.User{
	ID:    "U001",
	Email: "priya@renuga.com",
	Role:  models.RoleFrontDesk,
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := Generate(secret, time.Hour, testUser)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := Parse(secret, token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.ID != testUser.ID || claims.Email != testUser.Email || claims.Role != testUser.Role {
		t.Errorf("claims = %+v, want identity of %+v", claims, testUser)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Generate([]byte("secret-a"), time.Hour, testUser)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := Parse([]byte("secret-b"), token); err == nil {
		t.Fatal("expected forged token to be rejected")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := Generate(secret, -time.Minute, testUser)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := Parse(secret, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("test-secret"), "not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := ComparePassword(hash, "password123"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}
