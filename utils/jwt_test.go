package utils

import (
	"testing"
	"time"

	"github.com/MERN-ing-the-midnight-oil/shelf-elf/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.App.JWTSecret = "test-secret"
	config.App.TokenTTL = time.Hour

	token, err := GenerateJWT(42, "admin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	config.App.JWTSecret = "test-secret"
	config.App.TokenTTL = -time.Minute

	token, err := GenerateJWT(1, "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	config.App.JWTSecret = "test-secret"
	config.App.TokenTTL = time.Hour

	token, err := GenerateJWT(1, "user")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	config.App.JWTSecret = "another-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	config.App.JWTSecret = "test-secret"

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
