package helpers

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// SignedDetails is the JWT payload. The three role flags are a snapshot
// taken at issuance: changing a user's roles only takes effect the next
// time a token is issued.
type SignedDetails struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	IsWaiter  bool   `json:"is_waiter"`
	IsKitchen bool   `json:"is_kitchen"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("token is invalid or expired")

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

// GenerateAllTokens issues an access token carrying the role claims and a
// bare refresh token.
func GenerateAllTokens(userID uint, username string, isAdmin, isWaiter, isKitchen bool) (string, string, error) {
	claims := &SignedDetails{
		UserID:    userID,
		Username:  username,
		IsAdmin:   isAdmin,
		IsWaiter:  isWaiter,
		IsKitchen: isKitchen,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	refreshClaims := &SignedDetails{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey())
	if err != nil {
		return "", "", err
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secretKey())
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

// ValidateToken parses and verifies a signed token and returns its claims.
func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return secretKey(), nil
		},
	)
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
