package models

import (
	"errors"
	"time"

	"agora/internal/env"

	sj "github.com/brianvoe/sjwt"
)

var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 30 * 24 * time.Hour

// ViewerToken is the claim set of a bearer token.
type ViewerToken struct {
	ID string `json:"id"`
}

func (vt *ViewerToken) GenToken() string {
	claims, _ := sj.ToClaims(vt)
	claims.SetIssuedAt(time.Now())
	claims.SetExpiresAt(time.Now().Add(tokenTTL))

	return claims.Generate(env.JWT_SECRET)
}

func (vt *ViewerToken) ParseToken(token string) error {
	if !sj.Verify(token, env.JWT_SECRET) {
		return ErrInvalidToken
	}

	claims, err := sj.Parse(token)
	if err != nil {
		return ErrInvalidToken
	}
	if err := claims.Validate(); err != nil {
		return err
	}
	if err := claims.ToStruct(vt); err != nil {
		return err
	}
	if vt.ID == "" {
		return ErrInvalidToken
	}

	return nil
}
