package googleauth

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

var (
	ErrEmptyClientID = fmt.Errorf("empty google client id")
	ErrNoSubject     = fmt.Errorf("id token without subject")
)

// Profile is the identity carried by a Google ID token
type Profile struct {
	GoogleID string
	Email    string
	Nama     string
}

// Verifier validates Google sign-in credentials
type Verifier interface {
	Configured() bool
	Verify(ctx context.Context, credential string) (*Profile, error)
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type verifier struct {
	clientID string
	validate validateFunc
}

func (v *verifier) Configured() bool {
	return v.clientID != ""
}

// Verify checks the signature, the expiry and the audience of the credential
func (v *verifier) Verify(ctx context.Context, credential string) (*Profile, error) {
	if v.clientID == "" {
		return nil, ErrEmptyClientID
	}

	payload, err := v.validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, err
	}

	return profileFromPayload(payload)
}

func profileFromPayload(payload *idtoken.Payload) (*Profile, error) {
	if payload.Subject == "" {
		return nil, ErrNoSubject
	}

	p := &Profile{GoogleID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		p.Email = strings.ToLower(email)
	}
	if nama, ok := payload.Claims["name"].(string); ok {
		p.Nama = nama
	}

	return p, nil
}

func New(clientID string) Verifier {
	return &verifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}
