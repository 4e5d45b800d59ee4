package scope

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingKey   = errors.New("signing key is required")
)

// Payload is the identity carried in a bearer token.
type Payload struct {
	UserID   int64
	Username string
	Role     string
}

// Manager issues and verifies bearer tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type manager struct {
	key    []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
	now    func() time.Time
}

// New returns an HS256 Manager. A zero ttl issues tokens without expiry.
func New(secret, issuer string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrMissingKey
	}
	return &manager{
		key:    []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		now:    time.Now,
	}, nil
}

func (m *manager) CreateToken(p Payload) (string, error) {
	now := m.now()
	c := claims{
		Username: p.Username,
		Role:     p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(p.UserID, 10),
			Issuer:   m.issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if m.ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.key)
}

func (m *manager) Verify(token string) (Payload, error) {
	var c claims
	_, err := m.parser.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.key, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return Payload{}, ErrExpiredToken
		}
		return Payload{}, ErrInvalidToken
	}

	if m.issuer != "" && c.Issuer != m.issuer {
		return Payload{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Payload{}, ErrInvalidToken
	}

	return Payload{UserID: id, Username: c.Username, Role: c.Role}, nil
}
