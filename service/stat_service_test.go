package service

import (
	"context"
	"errors"
	"testing"

	"statbot/events"
	"statbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatFixture() (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockLedgerRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockLedgerRepo := new(MockLedgerRepository)

	mockUoW.SetRepositories(mockLedgerRepo, nil, nil)
	mockFactory.On("Create").Return(mockUoW)

	return mockFactory, mockUoW, mockLedgerRepo
}

func TestStatService_SetStat(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockLedgerRepo := newStatFixture()

	svc := NewStatService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockLedgerRepo.On("SetValue", ctx, models.LedgerWallet, int64(100), int64(200), int64(500)).Return(nil)

	err := svc.SetStat(ctx, models.LedgerWallet, 100, 200, 500)

	require.NoError(t, err)

	published := mockUoW.PublishedEvents()
	require.Len(t, published, 1)
	change, ok := published[0].(events.StatChangeEvent)
	require.True(t, ok)
	assert.Equal(t, models.LedgerWallet, change.Ledger)
	assert.Equal(t, int64(500), change.NewValue)

	mockUoW.AssertExpectations(t)
	mockLedgerRepo.AssertExpectations(t)
}

func TestStatService_SetStat_RejectsNegativeValue(t *testing.T) {
	ctx := context.Background()
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockLedgerRepo := new(MockLedgerRepository)
	mockUoW.SetRepositories(mockLedgerRepo, nil, nil)

	svc := NewStatService(mockFactory)

	err := svc.SetStat(ctx, models.LedgerBank, 100, 200, -1)

	// Rejected before any store access
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
	mockFactory.AssertNotCalled(t, "Create")
	mockLedgerRepo.AssertNotCalled(t, "SetValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatService_AddStat(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockLedgerRepo := newStatFixture()

	svc := NewStatService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockLedgerRepo.On("IncrementValue", ctx, models.LedgerXP, int64(100), int64(200), int64(5)).Return(int64(5), nil)

	newValue, err := svc.AddStat(ctx, models.LedgerXP, 100, 200, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), newValue)

	published := mockUoW.PublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, int64(5), published[0].(events.StatChangeEvent).NewValue)

	mockLedgerRepo.AssertExpectations(t)
}

func TestStatService_AddStat_NegativeAmountAllowed(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockLedgerRepo := newStatFixture()

	svc := NewStatService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	// No clamp: the ledger may go negative
	mockLedgerRepo.On("IncrementValue", ctx, models.LedgerWallet, int64(100), int64(200), int64(-50)).Return(int64(-20), nil)

	newValue, err := svc.AddStat(ctx, models.LedgerWallet, 100, 200, -50)

	require.NoError(t, err)
	assert.Equal(t, int64(-20), newValue)
}

func TestStatService_AddStat_StoreError(t *testing.T) {
	ctx := context.Background()
	mockFactory, mockUoW, mockLedgerRepo := newStatFixture()

	svc := NewStatService(mockFactory)

	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockLedgerRepo.On("IncrementValue", ctx, models.LedgerBank, int64(100), int64(200), int64(10)).Return(int64(0), errors.New("connection lost"))

	_, err := svc.AddStat(ctx, models.LedgerBank, 100, 200, 10)

	require.Error(t, err)
	assert.Empty(t, mockUoW.PublishedEvents())
	mockUoW.AssertNotCalled(t, "Commit")
}
