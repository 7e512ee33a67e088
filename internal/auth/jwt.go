package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lshigami/auriter/config"
)

const (
	UserTokenTTL = 30 * 24 * time.Hour
	RoomTokenTTL = time.Hour
)

// Participant roles inside an interview room.
const (
	RoomRoleHost  = "host"
	RoomRoleGuest = "guest"
)

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type RoomClaims struct {
	RoomID string `json:"room_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type JWTMaker struct {
	secret []byte
	now    func() time.Time
}

func NewJWTMaker(cfg *config.Config) *JWTMaker {
	return &JWTMaker{secret: []byte(cfg.JWTSecret), now: time.Now}
}

func (m *JWTMaker) CreateUserToken(userID uint, email, role string) (string, *UserClaims, error) {
	claims := &UserClaims{
		UserID:           userID,
		Email:            email,
		Role:             role,
		RegisteredClaims: m.registered(email, UserTokenTTL),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("error signing user token: %w", err)
	}
	return token, claims, nil
}

func (m *JWTMaker) VerifyUserToken(tokenStr string) (*UserClaims, error) {
	claims := &UserClaims{}
	if err := m.parse(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *JWTMaker) CreateRoomToken(roomID, role string) (string, error) {
	if role != RoomRoleHost && role != RoomRoleGuest {
		return "", fmt.Errorf("unknown room role %q", role)
	}
	claims := &RoomClaims{
		RoomID:           roomID,
		Role:             role,
		RegisteredClaims: m.registered(roomID, RoomTokenTTL),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error signing room token: %w", err)
	}
	return token, nil
}

func (m *JWTMaker) VerifyRoomToken(tokenStr string) (*RoomClaims, error) {
	claims := &RoomClaims{}
	if err := m.parse(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (m *JWTMaker) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := m.now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (m *JWTMaker) parse(tokenStr string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
