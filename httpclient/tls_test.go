package httpclient

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTLSConfig_Build(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *TLSConfig
		wantNil bool
		wantMin uint16
	}{
		{"nil", nil, true, 0},
		{"empty", &TLSConfig{}, true, 0},
		{"skip verify", &TLSConfig{SkipVerify: true}, false, tls.VersionTLS12},
		{"tls 1.3", &TLSConfig{MinVersion: "1.3"}, false, tls.VersionTLS13},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cfg.Build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != tc.wantNil {
				t.Fatalf("expected nil=%v, got %+v", tc.wantNil, got)
			}
			if got != nil && got.MinVersion != tc.wantMin {
				t.Errorf("expected min version %#x, got %#x", tc.wantMin, got.MinVersion)
			}
		})
	}
}

func TestTLSConfig_UnknownVersion(t *testing.T) {
	cfg := &TLSConfig{MinVersion: "1.0"}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "[1.2 1.3]") {
		t.Fatalf("expected the known versions in the error, got %v", err)
	}
	if _, err := cfg.Build(); err == nil {
		t.Fatal("expected Build to reject the version")
	}
}

func TestTLSConfig_EmptyCABundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	if err := os.WriteFile(path, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := (&TLSConfig{CAFile: path}).Build()
	if err == nil || !strings.Contains(err.Error(), "no certificates found") {
		t.Fatalf("expected an empty bundle error, got %v", err)
	}
}
