package compose

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// Base environment defaults shared by every configuration. The secret
// key is generated per invocation and substituted at composition time.
const (
	envKeySecret        = "SECRET_KEY"
	envKeyAlgorithm     = "ALGORITHM"
	envKeyTokenLifetime = "ACCESS_TOKEN_EXPIRE_MINUTES"

	defaultAlgorithm     = "HS256"
	defaultTokenLifetime = "30"
)

// secretKeyBytes is the entropy of the generated signing secret. The
// URL-safe encoding of 32 bytes is 43 characters.
const secretKeyBytes = 32

// GenerateSecretKey draws a fresh URL-safe secret from a
// cryptographically secure source. It is the engine's only side effect.
func GenerateSecretKey() (string, error) {
	buf := make([]byte, secretKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// renderEnvFile merges the fixed base set with the database fragment's
// environment defaults. Base keys are inserted first and win on
// collision: a later key equal to one already present is not
// re-inserted.
func renderEnvFile(secret string, db Fragment) string {
	vars := []EnvVar{
		{envKeySecret, secret},
		{envKeyAlgorithm, defaultAlgorithm},
		{envKeyTokenLifetime, defaultTokenLifetime},
	}
	seen := map[string]bool{
		envKeySecret:        true,
		envKeyAlgorithm:     true,
		envKeyTokenLifetime: true,
	}
	for _, v := range db.EnvVars {
		if seen[v.Key] {
			continue
		}
		seen[v.Key] = true
		vars = append(vars, v)
	}

	var b strings.Builder
	for _, v := range vars {
		b.WriteString(v.Key)
		b.WriteByte('=')
		b.WriteString(v.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
