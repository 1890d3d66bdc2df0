package firebase

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// App bundles the Firebase clients the service needs: Firestore for the
// booking collections, Auth for email lookups and Messaging for admin pushes.
// All three share one initialized app.
type App struct {
	Firestore *firestore.Client
	Auth      *auth.Client
	Messaging *messaging.Client
}

// NewApp initializes the Firebase app from a service-account credentials file.
func NewApp(ctx context.Context, credentialsPath string) (*App, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Auth client: %w", err)
	}

	msgClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Messaging client: %w", err)
	}

	log.Println("✅ Firebase app initialized successfully")

	return &App{
		Firestore: fsClient,
		Auth:      authClient,
		Messaging: msgClient,
	}, nil
}

// Close releases the Firestore client connection.
func (a *App) Close() error {
	return a.Firestore.Close()
}
