package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"snbp_backend/internals/constants"
)

// toleransi jam antar server
const expirySkew = 30 * time.Second

var (
	ErrNoToken       = errors.New("unauthorized - No token provided")
	ErrTokenFormat   = errors.New("unauthorized - Invalid token format")
	ErrTokenExpired  = errors.New("unauthorized - Token expired")
	ErrTokenInvalid  = errors.New("unauthorized - Token parse error")
	ErrMissingSecret = errors.New("JWT_SECRET belum diset")
)

// AccessClaims: isi token akses yang dipakai untuk membangun Session.
type AccessClaims struct {
	UserID    uuid.UUID
	Nama      string
	Email     string
	Role      constants.Role
	ExpiresAt time.Time
}

// IssueAccessToken menandatangani token HS256 berisi id, nama, email, role.
func IssueAccessToken(secret string, userID uuid.UUID, nama, email string, role constants.Role, ttl time.Duration) (string, time.Time, error) {
	if strings.TrimSpace(secret) == "" {
		return "", time.Time{}, ErrMissingSecret
	}
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"id":    userID.String(),
		"nama":  nama,
		"email": email,
		"role":  string(role),
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, time.Unix(exp.Unix(), 0).UTC(), nil
}

// ParseAccessToken memverifikasi signature lalu exp (dengan skew) secara manual.
func ParseAccessToken(secret, raw string) (*AccessClaims, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, ErrTokenInvalid
	}

	exp, err := validateTokenExpiry(claims, expirySkew)
	if err != nil {
		return nil, err
	}

	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return nil, fmt.Errorf("unauthorized - Invalid or missing user ID")
	}
	roleStr, _ := claims["role"].(string)
	role, err := constants.ParseRole(roleStr)
	if err != nil {
		return nil, fmt.Errorf("unauthorized - %w", err)
	}
	nama, _ := claims["nama"].(string)
	email, _ := claims["email"].(string)

	return &AccessClaims{
		UserID:    userID,
		Nama:      nama,
		Email:     email,
		Role:      role,
		ExpiresAt: exp,
	}, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) (time.Time, error) {
	expVal, ok := claims["exp"]
	if !ok {
		return time.Time{}, ErrTokenExpired
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return time.Time{}, fmt.Errorf("invalid exp type")
	}

	expTime := time.Unix(expUnix, 0).UTC()
	if time.Now().UTC().After(expTime.Add(skew)) {
		return time.Time{}, ErrTokenExpired
	}
	return expTime, nil
}

// ExtractBearerToken: Authorization header, fallback cookie access_token.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", ErrNoToken
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", ErrTokenFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", ErrTokenFormat
	}
	return tok, nil
}
