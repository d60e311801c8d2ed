package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestIssuer_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(testSecret, time.Hour)

	token, err := iss.Issue(42, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := iss.Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssuer_Verify_Expired(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-2 * time.Hour)
	issuer := NewIssuer(testSecret, time.Hour).WithClock(func() time.Time { return past })

	token, err := issuer.Issue(1, "old@example.com")
	require.NoError(t, err)

	_, err = NewIssuer(testSecret, time.Hour).Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Verify_JustBeforeExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-59 * time.Minute)
	token, err := NewIssuer(testSecret, time.Hour).
		WithClock(func() time.Time { return issued }).
		Issue(7, "edge@example.com")
	require.NoError(t, err)

	claims, err := NewIssuer(testSecret, time.Hour).Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
}

func TestIssuer_Verify_Rejects(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(testSecret, time.Hour)
	valid, err := iss.Issue(1, "a@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		iss   *Issuer
	}{
		{name: "malformed", token: "not-a-jwt", iss: iss},
		{name: "empty", token: "", iss: iss},
		{name: "wrong secret", token: valid, iss: NewIssuer([]byte("other-secret"), time.Hour)},
		{name: "tampered", token: valid + "x", iss: iss},
		{name: "alg none", token: noneToken, iss: iss},
		{name: "missing exp", token: noExp, iss: iss},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := tt.iss.Verify(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultTTL, NewIssuer(testSecret, 0).TTL())
	assert.Equal(t, 30*time.Minute, NewIssuer(testSecret, 30*time.Minute).TTL())
}
