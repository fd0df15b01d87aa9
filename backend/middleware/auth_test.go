package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/raiderlog/raiderlog/raiderlog"
)

var testAuthConfig = raiderlog.AuthConfig{
	Secret: "test-secret",
	Issuer: "raiderlog-auth",
}

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestParseIdentity(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		claims   Claims
		secret   string
		wantUser string
		wantRole string
		wantErr  bool
	}{
		{
			name: "valid raider token",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-42",
					Issuer:    "raiderlog-auth",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			},
			secret:   "test-secret",
			wantUser: "user-42",
		},
		{
			name: "valid admin token",
			claims: Claims{
				Role: "admin",
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					Issuer:    "raiderlog-auth",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			},
			secret:   "test-secret",
			wantUser: "user-1",
			wantRole: "admin",
		},
		{
			name: "expired token",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-42",
					Issuer:    "raiderlog-auth",
					ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
				},
			},
			secret:  "test-secret",
			wantErr: true,
		},
		{
			name: "wrong secret",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-42",
					Issuer:    "raiderlog-auth",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			},
			secret:  "other-secret",
			wantErr: true,
		},
		{
			name: "wrong issuer",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-42",
					Issuer:    "someone-else",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			},
			secret:  "test-secret",
			wantErr: true,
		},
		{
			name: "missing subject",
			claims: Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    "raiderlog-auth",
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				},
			},
			secret:  "test-secret",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, tt.claims, tt.secret)
			identity, err := ParseIdentity(token, testAuthConfig)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIdentity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if identity.UserID != tt.wantUser {
				t.Errorf("ParseIdentity() user = %q, want %q", identity.UserID, tt.wantUser)
			}
			if identity.Role != tt.wantRole {
				t.Errorf("ParseIdentity() role = %q, want %q", identity.Role, tt.wantRole)
			}
		})
	}
}

func TestParseIdentity_RejectsUnsignedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"},
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}
	if _, err := ParseIdentity(raw, testAuthConfig); err == nil {
		t.Error("ParseIdentity() accepted a token with alg=none")
	}
}
