package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/handlers"
	"github.com/SscSPs/autoinvest_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) Register(ctx context.Context, handle, password, referrerHandle string) (*domain.Account, error) {
	args := m.Called(ctx, handle, password, referrerHandle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Authenticate(ctx context.Context, handle, password string) (*domain.Account, error) {
	args := m.Called(ctx, handle, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock WalletService ---

type MockWalletService struct {
	mock.Mock
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

func (m *MockWalletService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWalletService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, destination string) (*domain.Transaction, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, amount, destination)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockWalletService) ListTransactions(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockWalletService) ResolveWithdrawal(ctx context.Context, transactionID string, approve bool) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockWalletService) ReconcileAccount(ctx context.Context, accountID string) (*accounting.Reconciliation, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Reconciliation), args.Error(1)
}

// --- Mock AssetService ---

type MockAssetService struct {
	mock.Mock
}

var _ portssvc.AssetSvcFacade = (*MockAssetService)(nil)

func (m *MockAssetService) ListTiers(ctx context.Context) []domain.Tier {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tier)
}

func (m *MockAssetService) ListAssets(ctx context.Context, accountID string) ([]domain.Asset, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

func (m *MockAssetService) Purchase(ctx context.Context, accountID string, tierID int) (*domain.Asset, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, tierID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.Asset), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockAssetService) ApplyDailyAccrual(ctx context.Context, day time.Time) (domain.AccrualReport, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(domain.AccrualReport), args.Error(1)
}

// --- Mock AccrualTrigger ---

type MockAccrualTrigger struct {
	mock.Mock
}

var _ handlers.AccrualTrigger = (*MockAccrualTrigger)(nil)

func (m *MockAccrualTrigger) Trigger(ctx context.Context) (domain.AccrualReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AccrualReport), args.Error(1)
}
