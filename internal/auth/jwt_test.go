package auth

import "testing"

func TestGenerateAndValidateSessionToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.GenerateSessionToken("session-123")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateSessionToken() returned empty token")
	}

	claims, err := issuer.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.SessionID != "session-123" {
		t.Errorf("SessionID = %q, want session-123", claims.SessionID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").GenerateSessionToken("session-123")
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if _, err := NewTokenIssuer("secret-b").ValidateToken(token); err == nil {
		t.Error("ValidateToken() with wrong secret expected error, got nil")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	if _, err := issuer.ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() with garbage expected error, got nil")
	}
}
