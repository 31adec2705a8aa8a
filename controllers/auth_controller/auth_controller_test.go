package auth_controller

import (
	"strings"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/storage"
	"github.com/t2bot/portfolio-repo/types"
)

type AuthControllerSuite struct {
	suite.Suite
	conf config.MainRepoConfig
	ctx  rcontext.RequestContext
}

func (s *AuthControllerSuite) SetupTest() {
	s.conf = config.NewDefaultMainConfig()
	s.conf.Database.Type = config.DatabaseTypeMemory
	s.conf.Auth.BcryptCost = 4
	s.conf.Auth.JwtSecret = "test-secret"
	config.Set(&s.conf)
	storage.Set(storage.NewMemoryStores())
	s.ctx = rcontext.Initial()
}

func (s *AuthControllerSuite) TestRegisterAndLogin() {
	t := s.T()

	user, err := Register(s.ctx, "  Editor@Example.com ", "hunter22", "Sam")
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	res, err := Login(s.ctx, "EDITOR@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.Id, res.User.Id)
	assert.NotEmpty(t, res.Token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), res.ExpiresAt, time.Minute)

	session, err := ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.Id, session.UserId)
	assert.Equal(t, "editor@example.com", session.Email)
	assert.Equal(t, "Sam", session.FirstName)
}

func (s *AuthControllerSuite) TestRegisterDuplicate() {
	t := s.T()

	_, err := Register(s.ctx, "a@example.com", "password", "A")
	require.NoError(t, err)
	_, err = Register(s.ctx, "A@example.com", "password", "A")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func (s *AuthControllerSuite) TestRegisterValidation() {
	t := s.T()

	_, err := Register(s.ctx, "not-an-email", "123", "")
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 3)

	_, err = Register(s.ctx, "a@example.com", "password", strings.Repeat("x", 51))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "First name must be less than 50 characters", verr.Issues[0].Message)
}

func (s *AuthControllerSuite) TestRegisterDisabled() {
	t := s.T()

	s.conf.Auth.AllowRegistration = false
	_, err := Register(s.ctx, "a@example.com", "password", "A")
	assert.ErrorIs(t, err, common.ErrRegistrationDisabled)

	// operators can still create accounts
	_, err = CreateUser(s.ctx, "a@example.com", "password", "A")
	assert.NoError(t, err)
}

func (s *AuthControllerSuite) TestLoginFailures() {
	t := s.T()

	_, err := Register(s.ctx, "a@example.com", "password", "A")
	require.NoError(t, err)

	_, err = Login(s.ctx, "a@example.com", "wrong-password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = Login(s.ctx, "b@example.com", "password")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	var verr *common.ValidationError
	_, err = Login(s.ctx, "a@example.com", "")
	assert.ErrorAs(t, err, &verr)
}

func (s *AuthControllerSuite) TestValidateTokenRejects() {
	t := s.T()

	user := &types.User{Id: "u1", Email: "a@example.com", FirstName: "A"}
	token, _, err := IssueToken(user)
	require.NoError(t, err)

	_, err = ValidateToken("garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	// rotating the secret invalidates old tokens
	s.conf.Auth.JwtSecret = "another-secret"
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func (s *AuthControllerSuite) TestValidateTokenExpired() {
	t := s.T()

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.HS256, Key: signingKey()}, (&jose.SignerOptions{}).WithType("JWT"))
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	token, err := jwt.Signed(signer).Claims(jwt.Claims{
		Issuer:   tokenIssuer,
		Subject:  "u1",
		IssuedAt: jwt.NewNumericDate(past.Add(-time.Hour)),
		Expiry:   jwt.NewNumericDate(past),
	}).Serialize()
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestAuthControllerSuite(t *testing.T) {
	suite.Run(t, new(AuthControllerSuite))
}
