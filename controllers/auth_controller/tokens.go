package auth_controller

import (
	"crypto/sha256"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/types"
	"github.com/t2bot/portfolio-repo/util"
)

const tokenIssuer = "portfolio-repo"
const clockLeeway = 30 * time.Second

var ephemeralSecret string
var ephemeralSecretOnce = &sync.Once{}

// Session is what a valid access token says about its holder.
type Session struct {
	UserId    string
	Email     string
	FirstName string
	ExpiresAt time.Time
}

type sessionClaims struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
}

func signingKey() []byte {
	secret := config.Get().Auth.JwtSecret
	if secret == "" {
		ephemeralSecretOnce.Do(func() {
			var err error
			ephemeralSecret, err = util.GenerateRandomString(64)
			if err != nil {
				logrus.Fatal(err)
			}
			logrus.Warn("No JWT secret configured: using a random one. Sessions will not survive a restart.")
		})
		secret = ephemeralSecret
	}
	// HS256 needs at least 256 bits of key
	key := sha256.Sum256([]byte(secret))
	return key[:]
}

func IssueToken(user *types.User) (string, time.Time, error) {
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: signingKey()}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now()
	expires := now.Add(config.Get().Auth.TokenLifetimeDuration())
	claims := jwt.Claims{
		Issuer:    tokenIssuer,
		Subject:   user.Id,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Expiry:    jwt.NewNumericDate(expires),
	}
	raw, err := jwt.Signed(signer).Claims(claims).Claims(sessionClaims{
		Email:     user.Email,
		FirstName: user.FirstName,
	}).Serialize()
	if err != nil {
		return "", time.Time{}, err
	}
	return raw, expires, nil
}

// ValidateToken returns common.ErrInvalidToken for anything other than an
// unexpired token signed with the current secret.
func ValidateToken(raw string) (*Session, error) {
	tok, err := jwt.ParseSigned(raw, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	claims := jwt.Claims{}
	extra := sessionClaims{}
	if err = tok.Claims(signingKey(), &claims, &extra); err != nil {
		return nil, common.ErrInvalidToken
	}
	if err = claims.ValidateWithLeeway(jwt.Expected{Issuer: tokenIssuer, Time: time.Now()}, clockLeeway); err != nil {
		return nil, common.ErrInvalidToken
	}
	if claims.Subject == "" || claims.Expiry == nil {
		return nil, common.ErrInvalidToken
	}

	return &Session{
		UserId:    claims.Subject,
		Email:     extra.Email,
		FirstName: extra.FirstName,
		ExpiresAt: claims.Expiry.Time(),
	}, nil
}
