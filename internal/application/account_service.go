// Package application holds the auth workflow engine: the state machine that
// takes an account from registration through OTP verification to login.
// Each identity moves UNREGISTERED -> PENDING_VERIFICATION -> VERIFIED and
// never back.
package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rsubandi/account-service/internal/domain/entity"
	"github.com/rsubandi/account-service/internal/domain/repository"
	"github.com/rsubandi/account-service/pkg/helpers"
	"github.com/rsubandi/account-service/pkg/mailer"
)

// OTPStore is the one-time-code store contract. A Put replaces any pending
// code for the email; expiry is enforced by the store itself.
type OTPStore interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, bool, error)
	Delete(ctx context.Context, email string) (bool, error)
}

// Dispatcher hands an email job to the delivery pipeline without blocking.
// The returned channel reports the hand-off outcome and may be dropped.
type Dispatcher interface {
	Dispatch(job mailer.EmailJob) <-chan error
}

type Service struct {
	Repo    repository.UserRepository
	OTP     OTPStore
	Tokens  *helpers.TokenIssuer
	Mail    Dispatcher
	Logger  *logrus.Logger
	AdminIP string
	OTPTTL  time.Duration
}

func NewService(repo repository.UserRepository, otp OTPStore, tokens *helpers.TokenIssuer, mail Dispatcher, logger *logrus.Logger, adminIP string, otpTTL time.Duration) *Service {
	if otpTTL <= 0 {
		otpTTL = 15 * time.Minute
	}
	return &Service{
		Repo:    repo,
		OTP:     otp,
		Tokens:  tokens,
		Mail:    mail,
		Logger:  logger,
		AdminIP: adminIP,
		OTPTTL:  otpTTL,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	ClientIP string
}

// Register creates an unverified account and triggers OTP delivery.
// Uniqueness is enforced by the credential store's constraints; a violation
// surfaces as ErrConflict. A failure to issue or deliver the OTP does not
// fail registration, the user can always regenerate.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := entity.RoleUser
	if s.AdminIP != "" && in.ClientIP == s.AdminIP {
		role = entity.RoleAdmin
	}

	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.IssueOTP(ctx, u.Email); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Error("otp issuance after registration failed")
	}
	return u, nil
}

// IssueOTP stores a fresh code for the email, replacing any pending one, and
// dispatches the verification email. Delivery itself is asynchronous; only
// the code store write is awaited here.
func (s *Service) IssueOTP(ctx context.Context, email string) error {
	code, err := helpers.GenOTPCode()
	if err != nil {
		return err
	}
	if err := s.OTP.Put(ctx, email, code, s.OTPTTL); err != nil {
		return err
	}
	s.Mail.Dispatch(mailer.NewOTPJob(email, code, s.OTPTTL))
	return nil
}

// VerifyOTP consumes the pending code and marks the account verified.
// A wrong code neither consumes the pending one nor mutates the account;
// a correct code works exactly once.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	stored, ok, err := s.OTP.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrOTPInvalid
	}

	if _, err := s.OTP.Delete(ctx, email); err != nil {
		return err
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.Repo.SetEmailVerified(ctx, u.ID)
}

// RegenerateOTP issues a new code for an existing account, unconditionally
// invalidating the previous one. There is no cooldown between regenerations.
func (s *Service) RegenerateOTP(ctx context.Context, email string) error {
	if _, err := s.Repo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.IssueOTP(ctx, email)
}

// Login checks credentials and mints a session token bound to the email.
// Unknown email and wrong password produce the identical error; storage
// failures propagate as-is, they are not credential problems.
func (s *Service) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !u.EmailVerified {
		return "", time.Time{}, ErrEmailNotVerified
	}
	return s.minted(u.Email)
}

func (s *Service) minted(email string) (string, time.Time, error) {
	token, exp, err := s.Tokens.Mint(email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("mint session token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// GetByEmail loads the account behind a verified session token.
func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
