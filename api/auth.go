package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cryptofolio/internal/db/models/postgres/public/model"
	"cryptofolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const accessTokenTtl = 24 * time.Hour

type AccessTokenClaims struct {
	Subject   string `json:"sub"`
	Username  string `json:"username"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

func issueAccessToken(signingSecret string, userAccount model.UserAccount) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      userAccount.UserAccountID.String(),
		"username": userAccount.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenTtl).Unix(),
	})
	return token.SignedString([]byte(signingSecret))
}

func parseAccessToken(signingSecret string, jwtStr string) (*AccessTokenClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedClaims AccessTokenClaims
	if err := json.Unmarshal(claimsJSON, &parsedClaims); err != nil {
		return nil, fmt.Errorf("error unmarshalling claims: %w", err)
	}

	if time.Now().UTC().Unix() > parsedClaims.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedClaims, nil
}

// authMiddleware resolves the bearer token to a user account id and
// stashes it on the request context. No token, a forged token, or an
// expired token all end the request with 401.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		returnErrorJsonCode(domain.ErrUnauthenticated, c, 401)
		return
	}

	claims, err := parseAccessToken(m.JwtSecret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("%w: %s", domain.ErrUnauthenticated, err.Error()), c, 401)
		return
	}

	userAccountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("%w: malformed subject", domain.ErrUnauthenticated), c, 401)
		return
	}

	c.Set("userAccountID", userAccountID)
	c.Next()
}

func (m ApiHandler) resolvePortfolioID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	userAccountID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	portfolio, err := m.PortfolioRepository.GetByUserAccountID(userAccountID)
	if err != nil {
		return uuid.Nil, err
	}
	if portfolio == nil {
		return uuid.Nil, fmt.Errorf("no portfolio for user account %s", userAccountID)
	}

	return portfolio.PortfolioID, nil
}
