package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	autherrors "github.com/nawamdisilvaaltitude1-collab/hris-project/internal/auth/errors"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/events"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/messaging/kafka"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/rbac"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/apperror"
	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultEmailDomain is the company suffix registrations must carry when
// COMPANY_EMAIL_DOMAIN is not configured.
const DefaultEmailDomain = "altitude1.com"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	// Approve is the admin approval gate: pending -> approved, once.
	Approve(ctx context.Context, actorID, userID string) (AuthResponse, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	outbox      kafka.OutboxRepository
	emailDomain string
	emailRe     *regexp.Regexp
	logger      *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, emailDomain string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}
	return &service{
		db:          db,
		repo:        repo,
		outbox:      outbox,
		emailDomain: emailDomain,
		emailRe:     regexp.MustCompile(`^[\w.\-]+@` + regexp.QuoteMeta(emailDomain) + `$`),
		logger:      l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if err := s.validateRegisterRequest(req); err != nil {
		s.logger.Warn("register validation failed", zap.String("email", req.Email), zap.Error(err))
		return RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return RegisterResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	user := &User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Password: string(hashed),
		Role:     string(rbac.RoleEmployee),
		Status:   StatusPending,
	}

	if err := qtx.Create(ctx, user); err != nil {
		s.logger.Warn("register persist failed", zap.String("email", req.Email), zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.UserLifecycleEvent{
			EventType:  events.UserRegistered,
			RequestID:  rid,
			UserID:     user.ID.String(),
			Email:      user.Email,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueOutboxEvent(ctx, tx, user.ID.String(), event); err != nil {
			s.logger.Error("register outbox persist failed", zap.Error(err))
			return RegisterResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return RegisterResponse{}, err
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
	)

	return RegisterResponse{Message: "Registration submitted for approval."}, nil
}

func (s *service) validateRegisterRequest(req RegisterRequest) error {
	fields := map[string]string{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		fields["name"] = "Name is required"
	} else if len(name) > 255 {
		fields["name"] = "Name must be at most 255 characters"
	}

	if len(req.Password) < 8 {
		fields["password"] = "Password must be at least 8 characters"
	}
	if req.Password != req.PasswordConfirmation {
		fields["password_confirmation"] = "Password confirmation does not match"
	}

	// Format check and company-suffix check are deliberately independent;
	// both must accept the address.
	if !s.emailRe.MatchString(req.Email) {
		fields["email"] = "Email must be a valid " + s.emailDomain + " address"
	}
	if !strings.HasSuffix(req.Email, "@"+s.emailDomain) {
		// Carry any other field violations along so the caller learns
		// everything in one round trip.
		if len(fields) > 0 {
			return autherrors.ErrEmailDomainNotAllowed.WithDetails(fields)
		}
		return autherrors.ErrEmailDomainNotAllowed
	}

	if len(fields) > 0 {
		return apperror.New(
			apperror.CodeValidation,
			"Registration input is invalid",
			http.StatusUnprocessableEntity,
		).WithDetails(fields)
	}
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if user.Status != StatusApproved {
		s.logger.Warn("login blocked, account not approved",
			zap.String("user_id", user.ID.String()),
			zap.String("status", user.Status),
		)
		return "", "", AuthResponse{}, autherrors.ErrAccountNotApproved
	}

	accessToken, err := s.generateToken(user.ID.String(), user.Role, 15*time.Minute)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user.ID.String(), user.Role, 7*24*time.Hour)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))

	return accessToken, refreshToken, mapToAuthResponse(*user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToAuthResponse(*u)
	return &resp, nil
}

func (s *service) Approve(ctx context.Context, actorID, userID string) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approve user requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("user_id", userID),
	)

	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve user begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows, err := qtx.ApproveIfPending(ctx, id)
	if err != nil {
		s.logger.Error("approve user persist failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if rows == 0 {
		if _, err := qtx.GetByID(ctx, id); err != nil {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		s.logger.Warn("approve user rejected, account not pending",
			zap.String("user_id", userID),
		)
		return AuthResponse{}, autherrors.ErrUserNotPending
	}

	user, err := qtx.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, autherrors.ErrUserNotFound
	}

	if s.outbox != nil {
		event := events.UserLifecycleEvent{
			EventType:  events.UserApproved,
			RequestID:  rid,
			UserID:     user.ID.String(),
			Email:      user.Email,
			ApprovedBy: actorID,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.queueOutboxEvent(ctx, tx, user.ID.String(), event); err != nil {
			s.logger.Error("approve user outbox persist failed", zap.Error(err))
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve user commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("approve user success",
		zap.String("user_id", userID),
		zap.String("actor_id", actorID),
	)

	return mapToAuthResponse(*user), nil
}

func (s *service) queueOutboxEvent(ctx context.Context, tx *sql.Tx, userID string, event events.UserLifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "user",
		AggregateID:   userID,
		EventType:     event.EventType,
		Topic:         events.UserLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// reusable token generator
func (s *service) generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToAuthResponse(u User) AuthResponse {
	resp := AuthResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Status:     u.Status,
		Department: u.Department,
		Position:   u.Position,
	}
	if u.JoiningDate != nil {
		resp.JoiningDate = u.JoiningDate.Format("2006-01-02")
	}
	return resp
}
