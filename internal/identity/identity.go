package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// Service resolves booking owners to their contact email via Firebase Auth.
type Service struct {
	client *auth.Client
}

func NewService(client *auth.Client) *Service {
	return &Service{client: client}
}

// EmailForUser looks up the email registered for a user. A user without an
// email address is an error the caller treats as skip-and-continue.
func (s *Service) EmailForUser(ctx context.Context, uid string) (string, error) {
	user, err := s.client.GetUser(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("could not get user %s: %w", uid, err)
	}

	if user.Email == "" {
		return "", fmt.Errorf("user %s has no email address", uid)
	}

	return user.Email, nil
}
