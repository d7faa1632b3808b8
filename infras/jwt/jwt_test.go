package jwt_test

import (
	"seatpos/config"
	infraJWT "seatpos/infras/jwt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, infraJWT.Claims{
		Email: "staff@cafe.vn",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "emp-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	s, err := token.SignedString([]byte("remote-secret"))
	require.NoError(t, err)

	return s
}

func newService() infraJWT.JWT {
	cfg := &config.Config{}
	cfg.Backend.RefreshSkewSeconds = 30

	return infraJWT.New(cfg)
}

func TestInspect(t *testing.T) {
	svc := newService()
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	claims, err := svc.Inspect(signed(t, exp))

	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.Subject)
	assert.Equal(t, "staff@cafe.vn", claims.Email)
	assert.True(t, claims.ExpiresAt.Equal(exp))
}

func TestInspect_Invalid(t *testing.T) {
	svc := newService()

	_, err := svc.Inspect("")
	assert.ErrorIs(t, err, infraJWT.ErrInvalidToken)

	_, err = svc.Inspect("not-a-token")
	assert.ErrorIs(t, err, infraJWT.ErrInvalidToken)
}

func TestExpiresWithin(t *testing.T) {
	svc := newService()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		wantAbout bool
	}{
		{
			name:      "far from expiry",
			token:     signed(t, now.Add(time.Hour)),
			wantAbout: false,
		},
		{
			name:      "inside skew",
			token:     signed(t, now.Add(10*time.Second)),
			wantAbout: true,
		},
		{
			name:      "already expired",
			token:     signed(t, now.Add(-time.Minute)),
			wantAbout: true,
		},
		{
			name:      "unreadable",
			token:     "garbage",
			wantAbout: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantAbout, svc.ExpiresWithin(tt.token, now))
		})
	}
}
