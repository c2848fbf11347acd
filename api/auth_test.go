package api

import (
	"testing"
	"time"

	"cryptofolio/internal/db/models/postgres/public/model"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_accessToken(t *testing.T) {
	userAccount := model.UserAccount{
		UserAccountID: uuid.New(),
		Username:      "satoshi",
	}

	t.Run("round trip", func(t *testing.T) {
		tokenStr, err := issueAccessToken("secret", userAccount)
		require.NoError(t, err)

		claims, err := parseAccessToken("secret", tokenStr)
		require.NoError(t, err)
		require.Equal(t, userAccount.UserAccountID.String(), claims.Subject)
		require.Equal(t, "satoshi", claims.Username)
		require.Greater(t, claims.ExpiresAt, time.Now().UTC().Unix())
	})

	t.Run("rejects a forged signature", func(t *testing.T) {
		tokenStr, err := issueAccessToken("secret", userAccount)
		require.NoError(t, err)

		_, err = parseAccessToken("other-secret", tokenStr)
		require.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": userAccount.UserAccountID.String(),
			"exp": time.Now().UTC().Add(-time.Hour).Unix(),
		})
		tokenStr, err := expired.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = parseAccessToken("secret", tokenStr)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := parseAccessToken("secret", "not.a.jwt")
		require.Error(t, err)
	})
}
