package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/dineshpandey3618-web/Rank1/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user not found")
	ErrUsernameExists     = errors.New("this username is already registered")
	ErrInvalidCredentials = errors.New("wrong username or password")
)

type (
	Repository interface {
		CheckUsernameUniqueness(ctx context.Context, username string, excludedUsers ...User) error
		CreateUser(ctx context.Context, usr User) (User, error)
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		GetUserByUsername(ctx context.Context, username string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
		// SetUserOnboarding writes role/board/state as one transition.
		SetUserOnboarding(ctx context.Context, id string, role, board, state null.String) (User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

func (svc *Service) checkUniqueness(uname string, exclUsers ...User) error {
	if err := svc.repo.CheckUsernameUniqueness(context.Background(), uname, exclUsers...); err != nil {
		if err == ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates a new account with onboarding fields unset. The caller
// still has to log in afterwards unless auto-login is configured.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	if err := nu.Validate(svc); err != nil {
		return User{}, err
	}

	now := time.Now().UTC()
	usr := User{
		Username:  nu.Username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}

	usr, err := svc.repo.CreateUser(ctx, usr)
	if err != nil {
		// the pre-insert uniqueness check can lose a concurrent signup race;
		// the store's unique violation reports the same field error
		if err == ErrUsernameExists {
			return User{}, core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return User{}, err
	}
	return usr, nil
}

// RegisterWithOTP creates the account only if enteredCode matches the code
// previously generated for this session. expectedCode comes from the session
// view; a consumed or never-requested code fails with ErrInvalidOTP.
func (svc *Service) RegisterWithOTP(ctx context.Context, nu NewUser, expectedCode, enteredCode string) (User, error) {
	if err := VerifyOTP(expectedCode, enteredCode); err != nil {
		return User{}, err
	}
	return svc.Register(ctx, nu)
}

// SendOTP hands the code to the mail service. Delivery is simulated in dev:
// the console backend just prints the message.
func (svc *Service) SendOTP(identifier, code string) {
	msg := &core.EmailMessage{
		To:      []mail.Address{{Address: identifier}},
		Subject: "Verify your account",
		Body:    fmt.Sprintf("Your %s verification code is %s.", svc.conf.AppName, code),
	}
	svc.mailSvc.SendMessages(msg)
}

// Authenticate checks the credentials and records the login time.
// Lookup misses and password mismatches are indistinguishable to the caller.
func (svc *Service) Authenticate(ctx context.Context, uname, pwd string) (User, error) {
	usr, err := svc.repo.GetUserByUsername(ctx, core.CleanString(uname, true /* lower */))
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := usr.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCredentials
	}

	usr.LastLogin = time.Now().UTC()
	return svc.repo.UpdateUser(ctx, usr)
}

// CompleteOnboarding sets role/board/state together; all three end up
// non-null. Calling it again simply overwrites the profile.
func (svc *Service) CompleteOnboarding(ctx context.Context, id string, ob Onboarding) (User, error) {
	if err := ob.Validate(); err != nil {
		return User{}, err
	}
	return svc.repo.SetUserOnboarding(ctx, id,
		null.StringFrom(ob.Role),
		null.StringFrom(ob.Board),
		null.StringFrom(ob.State),
	)
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByUsername(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(uname, true /* lower */))
}
