package auth_controller

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/t2bot/portfolio-repo/common"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/metrics"
	"github.com/t2bot/portfolio-repo/storage"
	"github.com/t2bot/portfolio-repo/types"
	"github.com/t2bot/portfolio-repo/util"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6
const maxFirstNameLength = 50

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *types.User
}

func countAttempt(action string, outcome string) {
	metrics.AuthAttempts.With(prometheus.Labels{"action": action, "outcome": outcome}).Inc()
}

// Register creates an account when self-registration is enabled.
func Register(ctx rcontext.RequestContext, email string, password string, firstName string) (*types.User, error) {
	if !config.Get().Auth.AllowRegistration {
		countAttempt("register", "disabled")
		return nil, common.ErrRegistrationDisabled
	}
	user, err := CreateUser(ctx, email, password, firstName)
	if err != nil {
		countAttempt("register", "failed")
		return nil, err
	}
	countAttempt("register", "success")
	return user, nil
}

// CreateUser creates an account regardless of the registration setting.
func CreateUser(ctx rcontext.RequestContext, email string, password string, firstName string) (*types.User, error) {
	email = util.NormalizeEmail(email)
	firstName = strings.TrimSpace(firstName)

	issues := &common.ValidationError{}
	if !util.IsEmail(email) {
		issues.Add("Please enter a valid email address", "email")
	}
	if len(password) < minPasswordLength {
		issues.Add("Password must be at least 6 characters", "password")
	}
	if firstName == "" {
		issues.Add("First name is required", "firstName")
	} else if !util.LengthBetween(firstName, 1, maxFirstNameLength) {
		issues.Add("First name must be less than 50 characters", "firstName")
	}
	if err := issues.OrNil(); err != nil {
		return nil, err
	}

	db := storage.Get().Users
	existing, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "error looking up user")
	}
	if existing != nil {
		return nil, common.ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.Get().Auth.BcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "error hashing password")
	}

	user := &types.User{
		Id:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	if err = db.InsertUser(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, errors.Wrap(err, "error creating user")
	}

	ctx.Log.WithFields(logrus.Fields{"userId": user.Id}).Info("Created user account")
	return user, nil
}

// Login checks the credentials and issues an access token. Every credential
// mismatch returns common.ErrInvalidCredentials.
func Login(ctx rcontext.RequestContext, email string, password string) (*LoginResult, error) {
	email = util.NormalizeEmail(email)

	issues := &common.ValidationError{}
	if !util.IsEmail(email) {
		issues.Add("Please enter a valid email address", "email")
	}
	if password == "" {
		issues.Add("Password is required", "password")
	}
	if err := issues.OrNil(); err != nil {
		countAttempt("login", "invalid")
		return nil, err
	}

	user, err := storage.Get().Users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "error looking up user")
	}
	if user == nil {
		countAttempt("login", "failed")
		return nil, common.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		countAttempt("login", "failed")
		return nil, common.ErrInvalidCredentials
	}

	token, expires, err := IssueToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "error issuing token")
	}

	countAttempt("login", "success")
	ctx.Log.WithFields(logrus.Fields{"userId": user.Id}).Info("User logged in")
	return &LoginResult{Token: token, ExpiresAt: expires, User: user}, nil
}
