package jwt

import (
	"errors"
	"fmt"
	"spice-garden/domain"
	"spice-garden/internal/utils"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateTokenUser(userID string, email string, role string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserByToken(token string) (UserClaim, error)
	}

	UserClaim struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	jwtUserClaim struct {
		UserClaim
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "SPICE_GARDEN",
		ttl:       time.Duration(utils.GetConfigInt("JWT_TTL_HOURS")) * time.Hour,
	}
}

func (j *jwtService) GenerateTokenUser(userID string, email string, role string) (string, error) {
	if j.secretKey == "" {
		return "", errors.New("jwt secret is not configured")
	}

	now := time.Now()
	claims := jwtUserClaim{
		UserClaim{UserID: userID, Email: email, Role: role},
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserByToken(token string) (UserClaim, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return UserClaim{}, domain.ErrTokenExpired
		}
		return UserClaim{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return UserClaim{}, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok || claims.UserID == "" {
		return UserClaim{}, domain.ErrTokenInvalid
	}
	return claims.UserClaim, nil
}
