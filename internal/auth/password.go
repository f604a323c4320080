// Package auth implements password hashing for the admin tools.
package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "gamenight-admin/internal/errors"
	"gamenight-admin/internal/metrics"
)

// HashCost is the bcrypt work factor for every hash this tool produces.
const HashCost = 12

// HashPassword computes a salted bcrypt hash of password. bcrypt embeds
// the salt in the returned string, so two calls with the same password
// yield different hashes that both validate.
func HashPassword(password string) (string, error) {
	start := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		metrics.PasswordHashTotal.WithLabelValues("error").Inc()
		return "", apperrors.HashingError("auth.HashPassword", err)
	}

	metrics.PasswordHashTotal.WithLabelValues("success").Inc()
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
