package auth

import (
	"testing"
	"time"
)

func TestJWTer_IssueParse(t *testing.T) {
	j := &JWTer{Secret: []byte("secret"), Issuer: "account-api", TTL: time.Hour}

	tok, err := j.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	claims, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("sub = %q", claims.Subject)
	}
	if claims.Issuer != "account-api" {
		t.Fatalf("iss = %q", claims.Issuer)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour+time.Minute {
		t.Fatalf("unexpected exp: %v", claims.ExpiresAt)
	}
}

func TestJWTer_Parse_WrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("secret"), Issuer: "account-api", TTL: time.Hour}
	other := &JWTer{Secret: []byte("different"), Issuer: "account-api", TTL: time.Hour}

	tok, err := j.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := other.Parse(tok); err == nil {
		t.Fatalf("expected parse to fail with wrong secret")
	}
}

func TestJWTer_Parse_WrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("secret"), Issuer: "someone-else", TTL: time.Hour}
	verifier := &JWTer{Secret: []byte("secret"), Issuer: "account-api", TTL: time.Hour}

	tok, err := j.Issue("alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Parse(tok); err == nil {
		t.Fatalf("expected parse to fail with wrong issuer")
	}
}

func TestJWTer_Parse_Garbage(t *testing.T) {
	j := &JWTer{Secret: []byte("secret"), Issuer: "account-api", TTL: time.Hour}
	if _, err := j.Parse("not-a-token"); err == nil {
		t.Fatalf("expected parse to fail")
	}
}
