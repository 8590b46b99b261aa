package fcm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	// ErrConfigMissing indicates the service account credential was not provided.
	ErrConfigMissing = errors.New("fcm: service account credential is not set")
	// ErrConfigInvalid indicates the credential blob is not valid JSON.
	ErrConfigInvalid = errors.New("fcm: service account credential is not valid JSON")
)

// Sender is the messaging capability the handlers depend on. It is satisfied
// by *messaging.Client and by test fakes.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Client wraps the firebase admin app and its messaging client. It is
// constructed exactly once at startup and injected into the handlers, so
// there is no lazily-checked global to race on.
type Client struct {
	app       *firebase.App
	messaging *messaging.Client
}

// New initializes the admin SDK from a service account JSON blob.
func New(ctx context.Context, serviceAccountJSON string) (*Client, error) {
	if serviceAccountJSON == "" {
		return nil, ErrConfigMissing
	}
	if !json.Valid([]byte(serviceAccountJSON)) {
		return nil, ErrConfigInvalid
	}

	opt := option.WithCredentialsJSON([]byte(serviceAccountJSON))
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("fcm: initialize app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("fcm: initialize messaging client: %w", err)
	}

	return &Client{app: app, messaging: client}, nil
}

// Messaging returns the messaging capability for this app instance.
func (c *Client) Messaging() Sender {
	return c.messaging
}
