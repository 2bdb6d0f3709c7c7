package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient wraps the identity provider's admin SDK. The back office
// delegates all credential handling to it: this service never mints or
// stores tokens itself.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken checks an ID token and returns the subject's uid and email.
func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (uid string, email string, err error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}

	if claim, ok := token.Claims["email"].(string); ok {
		email = claim
	}

	return token.UID, email, nil
}
