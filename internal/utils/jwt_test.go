package utils

import (
	"testing"
	"time"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	subject, err := ValidateJWTToken(token, "secret-key", "test-issuer")
	if err != nil {
		t.Fatalf("expected token to validate, got: %v", err)
	}
	if subject != "alice" {
		t.Errorf("expected subject 'alice', got %q", subject)
	}
}

func TestGenerateJWTToken_UniquePerCall(t *testing.T) {
	first, err := GenerateJWTToken("iss", "alice", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateJWTToken("iss", "alice", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("expected two tokens issued back to back to differ")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", subject: "alice", duration: time.Hour, key: "k"},
		{name: "empty subject", issuer: "iss", duration: time.Hour, key: "k"},
		{name: "zero duration", issuer: "iss", subject: "alice", key: "k"},
		{name: "empty key", issuer: "iss", subject: "alice", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken("iss", "alice", time.Hour, "right")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWTToken(token, "wrong", "iss"); err == nil {
		t.Error("expected signature error, got nil")
	}
}

func TestValidateJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("iss", "alice", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateJWTToken(token, "key", "other"); err == nil {
		t.Error("expected issuer error, got nil")
	}
}

func TestValidateJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("iss", "alice", time.Nanosecond, "key")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(1100 * time.Millisecond)
	if _, err := ValidateJWTToken(token, "key", "iss"); err == nil {
		t.Error("expected expiry error, got nil")
	}
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateJWTToken("iss", "alice", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}

	exp, ok := TokenExpiry(token)
	if !ok {
		t.Fatal("expected expiry to be found")
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour+time.Second {
		t.Errorf("unexpected expiry distance: %v", d)
	}
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Error("expected ok=false for an opaque token")
	}
}

func TestTokenLifetime(t *testing.T) {
	token, err := GenerateJWTToken("iss", "alice", 30*time.Second, "key")
	if err != nil {
		t.Fatal(err)
	}

	lifetime, ok := TokenLifetime(token)
	if !ok {
		t.Fatal("expected lifetime to be found")
	}
	if lifetime != 30*time.Second {
		t.Errorf("lifetime = %v, want 30s", lifetime)
	}

	if _, ok := TokenLifetime("not-a-jwt"); ok {
		t.Error("expected ok=false for an opaque token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got (%q, %v), want %q", tt.header, got, err, tt.want)
		}
	}
}
