package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prontomx/delivery-service/internal/auth"
	"github.com/prontomx/delivery-service/internal/entities"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub, role, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	future := time.Now().Add(time.Hour)

	testCases := []struct {
		name     string
		token    string
		wantErr  bool
		wantUser string
		wantRole entities.Role
	}{
		{
			name:     "valid client token",
			token:    signToken(t, "u1", "CLIENT", testSecret, future),
			wantUser: "u1",
			wantRole: entities.RoleClient,
		},
		{
			name:     "valid driver token",
			token:    signToken(t, "d1", "DELIVERY", testSecret, future),
			wantUser: "d1",
			wantRole: entities.RoleDelivery,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, "u1", "CLIENT", "other-secret", future),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   signToken(t, "u1", "CLIENT", testSecret, time.Now().Add(-time.Hour)),
			wantErr: true,
		},
		{
			name:    "unknown role",
			token:   signToken(t, "u1", "SUPERADMIN", testSecret, future),
			wantErr: true,
		},
		{
			name:    "missing subject",
			token:   signToken(t, "", "CLIENT", testSecret, future),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := auth.ParseToken(tc.token, testSecret)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantUser, p.UserID)
			assert.Equal(t, tc.wantRole, p.Role)
		})
	}
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := auth.FromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "u1", p.UserID)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := auth.Middleware(testSecret)(next)

	t.Run("valid token passes principal through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "u1", "CLIENT", testSecret, time.Now().Add(time.Hour)))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
