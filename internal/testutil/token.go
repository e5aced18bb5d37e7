package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Secret is the signing key used by tests that exercise token verification
var Secret = []byte("test-secret")

// SignToken issues an HS256 session token for clerkID, valid for one hour
func SignToken(t *testing.T, clerkID, name, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     clerkID,
		"name":    name,
		"email":   email,
		"picture": "https://img.example.gov/" + clerkID + ".png",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(Secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
