package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shivanisurendran/hostelparcel-management/internal/apperr"
	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
	"github.com/shivanisurendran/hostelparcel-management/internal/security"
)

// MatronName is the display name of the desk account.
const MatronName = "Hostel Matron"

// MatronCredentials is the single desk login; the password is a bcrypt hash.
type MatronCredentials struct {
	Email        string
	PasswordHash string
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  domain.User
}

// Service checks credentials and issues access tokens.
type Service struct {
	matron           MatronCredentials
	roster           studentRoster
	tokens           *TokenService
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates an auth Service.
func NewService(matron MatronCredentials, roster studentRoster, tokens *TokenService, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		matron:           matron,
		roster:           roster,
		tokens:           tokens,
		operationTimeout: 3 * time.Second,
		logger:           logger,
	}
}

// LoginMatron authenticates the desk account by email and password.
func (s *Service) LoginMatron(_ context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" || email != s.matron.Email {
		s.logger.Warn("matron login rejected")
		return Session{}, apperr.ErrUnauthorized
	}
	if err := security.VerifyPassword(password, s.matron.PasswordHash); err != nil {
		s.logger.Warn("matron login rejected", logx.Err(err))
		return Session{}, unauthorizedOr(err)
	}
	return s.issue(domain.User{Role: domain.RoleMatron, Name: MatronName})
}

// LoginStudent authenticates a resident by phone number and password.
// Unknown phones and wrong passwords are indistinguishable to the caller.
func (s *Service) LoginStudent(ctx context.Context, phone, password string) (Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return Session{}, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	st, err := s.roster.FindByPhone(ctx, phone)
	if err != nil {
		return Session{}, err
	}
	if st == nil {
		s.logger.Warn("student login rejected", logx.String("reason", "unknown phone"))
		return Session{}, apperr.ErrUnauthorized
	}
	if err := security.VerifyPassword(password, st.PasswordHash); err != nil {
		s.logger.Warn("student login rejected", logx.String("student_id", st.ID), logx.Err(err))
		return Session{}, unauthorizedOr(err)
	}

	return s.issue(domain.User{
		Role:        domain.RoleStudent,
		Name:        st.Name,
		RoomNumber:  st.RoomNumber,
		PhoneNumber: st.PhoneNumber,
	})
}

// Authenticate resolves a bearer token into the user it was issued to.
func (s *Service) Authenticate(token string) (domain.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.User{}, err
	}
	return claims.User(), nil
}

func (s *Service) issue(u domain.User) (Session, error) {
	token, err := s.tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}
	s.logger.Info("login succeeded", logx.String("role", string(u.Role)))
	return Session{Token: token, User: u}, nil
}

// unauthorizedOr keeps infrastructure errors visible while mapping a
// password mismatch to ErrUnauthorized.
func unauthorizedOr(err error) error {
	if errors.Is(err, apperr.ErrUnauthorized) {
		return apperr.ErrUnauthorized
	}
	return err
}
