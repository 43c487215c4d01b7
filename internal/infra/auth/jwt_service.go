// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"healthhub/config"
	domainerrors "healthhub/internal/domain/errors"
	"healthhub/internal/domain/service"
	"healthhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const keyIDHeader = "kid"

var errUnknownKeyID = errors.New("unknown signing key id")

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Tokens are signed with the current key and verified against every configured key,
// so rotating the current key leaves tokens signed with previous keys valid until they expire.
type jwtService struct {
	currentKeyID string
	keys         map[string][]byte
	ttl          time.Duration
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	current := cfg.SecretKey.Current
	if current.ID == "" || current.Value == "" {
		return nil, errors.New("jwt signing key must be provided")
	}

	keys := map[string][]byte{current.ID: []byte(current.Value)}
	for _, prev := range cfg.SecretKey.Previous {
		if prev.ID == "" || prev.Value == "" {
			return nil, errors.New("previous jwt signing keys need both id and value")
		}
		if _, exists := keys[prev.ID]; exists {
			return nil, errors.Errorf("duplicate jwt signing key id %q", prev.ID)
		}
		keys[prev.ID] = []byte(prev.Value)
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		currentKeyID: current.ID,
		keys:         keys,
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// IssueToken creates a token carrying the user id and email.
func (s *jwtService) IssueToken(userID, email string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header[keyIDHeader] = s.currentKeyID

	signed, err := token.SignedString(s.keys[s.currentKeyID])
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks the signature, algorithm and expiry of tokenString.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	if claims.UserID == "" || claims.Email == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token is missing identity claims")
	}

	return claims, nil
}

// keyFunc selects the verification key named by the kid header. Tokens without
// a kid are checked against the current key.
func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	kid, _ := token.Header[keyIDHeader].(string)
	if kid == "" {
		kid = s.currentKeyID
	}

	key, ok := s.keys[kid]
	if !ok {
		return nil, errUnknownKeyID
	}

	return key, nil
}
