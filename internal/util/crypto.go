package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

const (
	trackingSecretLength = 32
	sessionTokenLength   = 24
)

// GenerateTrackingSecret mints the high-entropy capability token embedded in a
// project's tracking URL. Set once at creation, never rotated.
func GenerateTrackingSecret() (string, error) {
	return GenerateNChar(trackingSecretLength)
}

// GenerateSessionToken mints an anonymous viewer session token for the
// tracking view. PIN attempt counting and the verified marker are scoped to it.
func GenerateSessionToken() (string, error) {
	return GenerateNChar(sessionTokenLength)
}
