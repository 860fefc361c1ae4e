package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/autoinvest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 6

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the registration/authentication service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{BaseService: newBaseService(), accountRepo: accountRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// Register stores the referrer handle verbatim; it carries no reward logic.
func (s *accountService) Register(ctx context.Context, handle, password, referrerHandle string) (*domain.Account, error) {
	handle = strings.TrimSpace(handle)
	referrerHandle = strings.TrimSpace(referrerHandle)
	if handle == "" {
		return nil, fmt.Errorf("%w: handle is required", apperrors.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, MinPasswordLength)
	}
	if referrerHandle == handle {
		return nil, fmt.Errorf("%w: an account cannot refer itself", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Handle:         handle,
		PasswordHash:   hash,
		Balance:        decimal.Zero,
		ReferrerHandle: referrerHandle,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account", slog.String("handle", handle))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account registered", slog.String("account_id", account.AccountID), slog.String("handle", handle))
	return &account, nil
}

func (s *accountService) Authenticate(ctx context.Context, handle, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByHandle(ctx, strings.TrimSpace(handle))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid handle or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up account for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid handle or password", apperrors.ErrUnauthorized)
	}
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}
