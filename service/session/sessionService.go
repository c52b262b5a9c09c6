package sessionsvc

import (
	"errors"

	"github.com/nasimrifat101/BookWaves-Server/util/token"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadInput     ErrCode = "BAD_INPUT"
	ErrUnauthorized ErrCode = "UNAUTHORIZED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Issue signs a 2-hour session token for the email claim.
	Issue(email string) (string, error)
	// Verify checks signature and expiry and returns the email claim.
	Verify(tok string) (string, error)
}

type service struct{ secret string }

func New(secret string) Service { return &service{secret: secret} }

func (s *service) Issue(email string) (string, error) {
	if email == "" {
		return "", makeErr(ErrBadInput)
	}
	return token.Issue(s.secret, email)
}

func (s *service) Verify(tok string) (string, error) {
	email, err := token.Parse(tok, s.secret)
	if err != nil {
		return "", makeErr(ErrUnauthorized)
	}
	return email, nil
}
