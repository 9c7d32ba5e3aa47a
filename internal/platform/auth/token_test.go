package auth

import (
	"testing"
	"time"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secreto-de-prueba", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.IDUsuario != 42 {
		t.Errorf("expected IDUsuario 42, got %d", claims.IDUsuario)
	}
	if claims.Subject != "42" {
		t.Errorf("expected subject 42, got %q", claims.Subject)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secreto-de-prueba", -time.Minute)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := issuer.Verify(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secreto-a", time.Hour)
	otro := NewTokenIssuer("secreto-b", time.Hour)

	token, _ := issuer.Issue(1)
	if _, err := otro.Verify(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("secreto-de-prueba", time.Hour)
	if _, err := issuer.Verify("no.es.untoken"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
