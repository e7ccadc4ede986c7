package auth

import (
	"errors"
	"time"

	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AccessTokenExpirationTime = time.Minute * 15
const RefreshTokenExpirationTime = 72 * time.Hour

type JWTClaim struct {
	Id      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Generate auth token for new user session
func GenerateJWT(id, email string, admin bool) (string, int64, error) {
	expirationTime := time.Now().Local().Add(AccessTokenExpirationTime)
	expirationTimeNumericDate := jwt.NewNumericDate(expirationTime)
	jwtKey := util.LoadEnvFor("SECRET")

	claims := JWTClaim{
		Id:      id,
		Email:   email,
		IsAdmin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: expirationTimeNumericDate,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// Generate refresh auth token for new user session.
func GenerateRefreshJWT(id, email string, admin bool) (string, error) {
	expirationTime := time.Now().Local().Add(RefreshTokenExpirationTime)
	expirationTimeNumericDate := jwt.NewNumericDate(expirationTime)
	jwtKey := util.LoadEnvFor("REFRESH_SECRET")

	claims := JWTClaim{
		Id:      id,
		Email:   email,
		IsAdmin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: expirationTimeNumericDate,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate a signed jwt refresh token and it's expiration time.
func ValidateRefreshToken(signedToken string) (JWTClaim, error) {
	return validateWithKey(signedToken, util.LoadEnvFor("REFRESH_SECRET"))
}

// Validate a signed jwt auth token and it's expiration time.
func ValidateToken(signedToken string) (JWTClaim, error) {
	return validateWithKey(signedToken, util.LoadEnvFor("SECRET"))
}

func validateWithKey(signedToken, jwtKey string) (JWTClaim, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&JWTClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtKey), nil
		},
	)
	if err != nil {
		return JWTClaim{}, err
	}

	claim, ok := token.Claims.(*JWTClaim)
	if !ok {
		return JWTClaim{}, errors.New("couldn't parse claims")
	}
	exp, _ := claim.GetExpirationTime()
	if exp == nil || exp.Local().Unix() < time.Now().Local().Unix() {
		return JWTClaim{}, errors.New("token expired")
	}

	return *claim, nil
}

// Extract and Validate jwt auth token.
func InitJwtClaim(c *gin.Context) (JWTClaim, error) {
	tknStr := ExtractToken(c)
	token, err := ValidateToken(tknStr)
	if err != nil {
		return JWTClaim{}, err
	}

	return token, nil
}

// Get user object ID from JWTClaim.
func (j JWTClaim) GetUserObjectId() (primitive.ObjectID, error) {
	userId, err := primitive.ObjectIDFromHex(j.Id)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return userId, nil
}

// Extract authorization token from request header, tolerating an
// optional "Bearer " prefix.
func ExtractToken(c *gin.Context) string {
	tokenString := c.GetHeader("Authorization")
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		return tokenString[7:]
	}
	return tokenString
}
