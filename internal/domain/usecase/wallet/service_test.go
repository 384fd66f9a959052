package wallet

import (
	"context"
	"testing"
	"time"

	coremocks "github.com/camilosanchez/virtual-wallet/mocks/port/core"
	persistencemocks "github.com/camilosanchez/virtual-wallet/mocks/port/persistence"
	"github.com/stretchr/testify/mock"
)

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

// serviceMocks bundles the engine's collaborators for the operation tests
type serviceMocks struct {
	uow          *persistencemocks.MockUnitOfWork
	accounts     *persistencemocks.MockAccountRepository
	ledger       *persistencemocks.MockTransactionRepository
	tokens       *coremocks.MockTokenProvider
	notifier     *coremocks.MockNotifier
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		accounts:     persistencemocks.NewMockAccountRepository(t),
		ledger:       persistencemocks.NewMockTransactionRepository(t),
		tokens:       coremocks.NewMockTokenProvider(t),
		notifier:     coremocks.NewMockNotifier(t),
		timeProvider: coremocks.NewMockTimeProvider(t),
		logger:       coremocks.NewMockLogger(t),
	}

	m.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	service := NewService(m.uow, m.tokens, m.notifier, m.timeProvider, m.logger)
	return service, m
}

// expectUnitOfWork wires Begin plus the repository getters for a transactional test
func (m *serviceMocks) expectUnitOfWork() context.Context {
	txCtx := context.Background()
	m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
	m.uow.EXPECT().GetAccountRepository(mock.Anything).Return(m.accounts).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.ledger).Maybe()
	return txCtx
}
