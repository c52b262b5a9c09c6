// service/session/session_service_test.go
package sessionsvc

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := New("test-secret")

	tok, err := svc.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := svc.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", email)
}

func TestIssue_EmptyEmail(t *testing.T) {
	svc := New("test-secret")
	_, err := svc.Issue("")
	require.Error(t, err)
	require.Equal(t, ErrBadInput, Code(err))
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := New("secret-a")
	verifier := New("secret-b")

	tok, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	require.Error(t, err)
	require.Equal(t, ErrUnauthorized, Code(err))
}

func TestVerify_Tampered(t *testing.T) {
	svc := New("test-secret")
	tok, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(tok + "x")
	require.Error(t, err)
	require.Equal(t, ErrUnauthorized, Code(err))
}

func TestVerify_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "user@example.com",
		"iat":   time.Now().Add(-3 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := New("test-secret")
	_, err = svc.Verify(tok)
	require.Error(t, err)
	require.Equal(t, ErrUnauthorized, Code(err))
}

func TestVerify_WrongAlgRejected(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc := New("test-secret")
	_, err = svc.Verify(tok)
	require.Error(t, err)
	require.Equal(t, ErrUnauthorized, Code(err))
}
