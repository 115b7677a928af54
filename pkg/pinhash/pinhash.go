// Package pinhash deriva y verifica el digest del PIN de confirmación con PBKDF2-HMAC-SHA256.
//
// Formato almacenado: pbkdf2-sha256$<iteraciones>$<salt base64>$<digest base64>
package pinhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	scheme     = "pbkdf2-sha256"
	Iterations = 120000
	saltLen    = 16
	keyLen     = 32
)

var enc = base64.RawStdEncoding

// Hash genera un digest salado para pin.
func Hash(pin string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("pinhash: generar salt: %w", err)
	}
	return encode(pin, salt, Iterations), nil
}

func encode(pin string, salt []byte, iter int) string {
	key := pbkdf2.Key([]byte(pin), salt, iter, keyLen, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", scheme, iter, enc.EncodeToString(salt), enc.EncodeToString(key))
}

// Verify compara pin contra el digest almacenado en tiempo constante.
// Retorna error solo si el digest almacenado está mal formado.
func Verify(pin, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != scheme {
		return false, fmt.Errorf("pinhash: formato desconocido")
	}
	iter, err := strconv.Atoi(parts[1])
	if err != nil || iter <= 0 {
		return false, fmt.Errorf("pinhash: iteraciones inválidas")
	}
	salt, err := enc.DecodeString(parts[2])
	if err != nil {
		return false, fmt.Errorf("pinhash: salt: %w", err)
	}
	want, err := enc.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("pinhash: digest: %w", err)
	}
	got := pbkdf2.Key([]byte(pin), salt, iter, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
