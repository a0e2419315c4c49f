package bcrypt_test

import (
	"strings"
	"testing"

	gocrypt "golang.org/x/crypto/bcrypt"

	"backend/school-platform/app/pkg/bcrypt"
)

func TestNewBcrypt(t *testing.T) {
	tests := []struct {
		name         string
		cost         int
		expectedCost int
	}{
		{
			name:         "valid cost within range",
			cost:         12,
			expectedCost: 12,
		},
		{
			name:         "cost below minimum defaults to default",
			cost:         3,
			expectedCost: gocrypt.DefaultCost,
		},
		{
			name:         "cost above maximum defaults to default",
			cost:         32,
			expectedCost: gocrypt.DefaultCost,
		},
		{
			name:         "minimum cost",
			cost:         gocrypt.MinCost,
			expectedCost: gocrypt.MinCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := bcrypt.NewBcrypt(tt.cost)
			if hasher.Cost() != tt.expectedCost {
				t.Errorf("NewBcrypt() cost = %v, expected %v", hasher.Cost(), tt.expectedCost)
			}
		})
	}
}

func TestBcrypt_HashPassword(t *testing.T) {
	hasher := bcrypt.NewBcrypt(gocrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "mySecurePassword123!",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.HashPassword(tt.password)
			if tt.expectError {
				if err == nil {
					t.Errorf("HashPassword() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("HashPassword() unexpected error: %v", err)
				return
			}
			if !strings.HasPrefix(hash, "$2a$") {
				t.Errorf("HashPassword() hash = %v, expected bcrypt format", hash)
			}
			if hash == tt.password {
				t.Errorf("HashPassword() returned the plaintext password")
			}
		})
	}
}

func TestBcrypt_CheckPassword(t *testing.T) {
	hasher := bcrypt.NewBcrypt(gocrypt.MinCost)
	password := "mySecurePassword123!"

	hash, err := hasher.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedMatch bool
		expectError   bool
	}{
		{
			name:          "correct password",
			password:      password,
			hash:          hash,
			expectedMatch: true,
		},
		{
			name:          "wrong password",
			password:      "wrongPassword",
			hash:          hash,
			expectedMatch: false,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectError: true,
		},
		{
			name:        "empty hash",
			password:    password,
			hash:        "",
			expectError: true,
		},
		{
			name:        "malformed hash",
			password:    password,
			hash:        "not-a-bcrypt-hash",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := hasher.CheckPassword(tt.password, tt.hash)
			if tt.expectError {
				if err == nil {
					t.Errorf("CheckPassword() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("CheckPassword() unexpected error: %v", err)
				return
			}
			if match != tt.expectedMatch {
				t.Errorf("CheckPassword() match = %v, expected %v", match, tt.expectedMatch)
			}
		})
	}
}
