package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sports-federation-api/config/common"
	"sports-federation-api/entity"
)

// Identity is the result of verifying a bearer credential.
type Identity struct {
	UserID string
	Role   string
}

// TokenVerifier resolves a bearer credential to an identity. The chat
// core depends on this interface rather than on JWT directly.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

var ErrInvalidToken = errors.New("token is not valid")

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"aud":     "sports-federation-api",
		"iss":     "sports-federation-api",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (j *JWT) Verify(token string) (Identity, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return Identity{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	return Identity{UserID: userID, Role: role}, nil
}

func (j *JWT) GetUserIdFromToken(token string) (string, error) {
	identity, err := j.Verify(token)
	if err != nil {
		return "", err
	}
	return identity.UserID, nil
}
