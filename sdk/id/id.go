// Package id generates correlation ids for requests to the identity
// vendor's backend.
package id

import (
	"fmt"

	"github.com/hashicorp/go-uuid"
)

// New generates an ID with an optional prefix.
func New(optionalPrefix string) (string, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return "", fmt.Errorf("unable to generate id: %w", err)
	}
	switch {
	case optionalPrefix != "":
		return fmt.Sprintf("%s_%s", optionalPrefix, id), nil
	default:
		return id, nil
	}
}
