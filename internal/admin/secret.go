package admin

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewSecret returns a fresh admin secret: 16 random bytes, hex encoded.
// The secret lives for the process lifetime only; restarting the server
// invalidates every outstanding admin link.
func NewSecret() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate admin secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// PanelURL builds the admin panel link that is printed to the console at
// startup. This is the only delivery mechanism for the secret.
func PanelURL(baseURL, secret string) string {
	return strings.TrimRight(baseURL, "/") + "/admin?token=" + secret
}
