// Package identity wraps the Clerk backend API.
package identity

import (
	"context"
	"fmt"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

type Service struct{}

// NewService configures the shared Clerk backend client key.
func NewService(secretKey string) *Service {
	clerk.SetKey(secretKey)
	return &Service{}
}

// DeleteUser removes the user from the identity provider.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if _, err := user.Delete(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user %s: %w", userID, err)
	}
	return nil
}
