// Package gatetoken issues and verifies the signed tokens embedded in a
// booking's QR code. The gate scanner presents the token back on entry and
// exit; how the scanner itself authenticates is out of scope here.
package gatetoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid gate token")
	ErrExpiredToken = errors.New("gate token expired")
)

type Claims struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	SlotID        uuid.UUID `json:"slot_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenLifetime time.Duration
}

func NewService(secretKey string, tokenLifetime time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenLifetime: tokenLifetime,
	}
}

// Issue signs a token valid from now until the reservation's expected end
// plus the configured lifetime, so late exits can still scan out.
func (s *Service) Issue(reservationID, slotID uuid.UUID, now, expectedEnd time.Time) (string, error) {
	claims := Claims{
		ReservationID: reservationID,
		SlotID:        slotID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expectedEnd.Add(s.tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
