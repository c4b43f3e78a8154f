// Package login implements the credential verification and
// session-issuance sequence behind the authentication endpoints.
package login

import (
	"context"
	"errors"
	"time"

	"github.com/rbarroso/auth-backend/internal/common"
	"github.com/rbarroso/auth-backend/internal/logging"
	"github.com/rbarroso/auth-backend/internal/server/accessrecords"
	"github.com/rbarroso/auth-backend/internal/server/auth"
	"github.com/rbarroso/auth-backend/internal/server/config"
	"github.com/rbarroso/auth-backend/internal/server/credentials"
	"github.com/rbarroso/auth-backend/internal/server/sessions"
)

const eventTypeLogin = "login"

// Result carries the outcome of a successful login: the signed bearer token
// and the minimal identity payload echoed to the caller. No other credential
// fields ever leave the service.
type Result struct {
	Token  string
	UserID int64
	Email  string
}

type Service struct {
	credentials   credentials.Repository
	sessions      sessions.Repository
	accessRecords accessrecords.Repository
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(creds credentials.Repository, sess sessions.Repository, records accessrecords.Repository, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		credentials:   creds,
		sessions:      sess,
		accessRecords: records,
		logger:        logger,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Login validates the supplied credentials and, on success, issues a bearer
// token and persists the session and audit rows.
//
// Unknown email and wrong password both surface as common.ErrorUnauthorized;
// the audit record is the only place the two cases differ. Session and audit
// writes after a successful match are best effort: a persistence failure is
// logged and the token is still returned, so a transient logging outage
// cannot lock out every user.
func (s *Service) Login(ctx context.Context, email, password, sourceIP string) (*Result, error) {
	cred, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.audit(ctx, nil, sourceIP, false, "Usuário não encontrado")
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "credential lookup failed", "error", err)
		return nil, common.ErrorStore
	}

	if !auth.VerifyPassword(password, cred.Password) {
		s.audit(ctx, &cred.ID, sourceIP, false, "Senha inválida")
		return nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(cred.ID, cred.Email, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return nil, common.ErrorInternal
	}

	// Success is already decided; the writes below must not change it.
	if err := s.sessions.Create(ctx, cred.ID, token, sourceIP, s.tokenValidity); err != nil {
		s.logger.Error(ctx, "session write failed", "credential_id", cred.ID, "error", err)
	}
	s.audit(ctx, &cred.ID, sourceIP, true, "Login bem-sucedido")

	return &Result{Token: token, UserID: cred.ID, Email: cred.Email}, nil
}

// Verify validates a bearer token and returns its claims. Expired and
// invalid tokens map to common.ErrTokenExpired and common.ErrInvalidToken
// respectively.
func (s *Service) Verify(tokenString string) (*auth.Claims, error) {
	return auth.ParseToken(tokenString, s.jwtSecret)
}

func (s *Service) audit(ctx context.Context, credentialID *int64, sourceIP string, success bool, message string) {
	if err := s.accessRecords.Create(ctx, credentialID, eventTypeLogin, sourceIP, success, message); err != nil {
		s.logger.Error(ctx, "access record write failed", "error", err)
	}
}
