package redis

import "testing"

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		key       string
		expected  string
	}{
		{"tx namespace", "tx", "abc-123", "idempotency:tx:abc-123"},
		{"empty key", "tx", "", "idempotency:tx:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cacheKey(tt.namespace, tt.key); got != tt.expected {
				t.Fatalf("cacheKey(%q, %q) = %q, want %q", tt.namespace, tt.key, got, tt.expected)
			}
		})
	}
}

func TestRevocationKey(t *testing.T) {
	tests := []struct {
		name     string
		jti      string
		expected string
	}{
		{"uuid jti", "0d1f6b0a-3e3a-4e7e-9f1a-2a8e6c9b1234", "revoked:0d1f6b0a-3e3a-4e7e-9f1a-2a8e6c9b1234"},
		{"empty jti", "", "revoked:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revocationKey(tt.jti); got != tt.expected {
				t.Fatalf("revocationKey(%q) = %q, want %q", tt.jti, got, tt.expected)
			}
		})
	}
}
