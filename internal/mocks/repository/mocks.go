// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"scubakeep/internal/domain/entity"
	"scubakeep/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDiverRepository mocks repository.DiverRepository.
type MockDiverRepository struct {
	mock.Mock
}

func (m *MockDiverRepository) FindAll(ctx context.Context) ([]*entity.Diver, error) {
	args := m.Called(ctx)
	if divers, ok := args.Get(0).([]*entity.Diver); ok {
		return divers, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDiverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Diver, error) {
	args := m.Called(ctx, id)
	if diver, ok := args.Get(0).(*entity.Diver); ok {
		return diver, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDiverRepository) FindByUsername(ctx context.Context, username string) (*entity.Diver, error) {
	args := m.Called(ctx, username)
	if diver, ok := args.Get(0).(*entity.Diver); ok {
		return diver, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDiverRepository) FindByEmail(ctx context.Context, email string) (*entity.Diver, error) {
	args := m.Called(ctx, email)
	if diver, ok := args.Get(0).(*entity.Diver); ok {
		return diver, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDiverRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *MockDiverRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockDiverRepository) Create(ctx context.Context, diver *entity.Diver) error {
	args := m.Called(ctx, diver)

	return args.Error(0)
}

func (m *MockDiverRepository) Update(ctx context.Context, diver *entity.Diver) error {
	args := m.Called(ctx, diver)

	return args.Error(0)
}

func (m *MockDiverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockDiverRepository) AdjustTotalDives(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)

	return args.Error(0)
}

// MockDiveLogRepository mocks repository.DiveLogRepository.
type MockDiveLogRepository struct {
	mock.Mock
}

func (m *MockDiveLogRepository) FindAll(ctx context.Context) ([]*entity.DiveLog, error) {
	args := m.Called(ctx)
	if logs, ok := args.Get(0).([]*entity.DiveLog); ok {
		return logs, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDiveLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiveLog, error) {
	args := m.Called(ctx, id)
	if log, ok := args.Get(0).(*entity.DiveLog); ok {
		return log, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockDiveLogRepository) CountByDiverID(ctx context.Context, diverID uuid.UUID) (int64, error) {
	args := m.Called(ctx, diverID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDiveLogRepository) Create(ctx context.Context, log *entity.DiveLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}

func (m *MockDiveLogRepository) Update(ctx context.Context, log *entity.DiveLog) error {
	args := m.Called(ctx, log)

	return args.Error(0)
}

func (m *MockDiveLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockDiveLogRepository) DeleteByDiverID(ctx context.Context, diverID uuid.UUID) (int64, error) {
	args := m.Called(ctx, diverID)

	return args.Get(0).(int64), args.Error(1)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) DiverRepo() repository.DiverRepository {
	args := m.Called()

	return args.Get(0).(repository.DiverRepository)
}

func (m *MockRepositoryFactory) DiveLogRepo() repository.DiveLogRepository {
	args := m.Called()

	return args.Get(0).(repository.DiveLogRepository)
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTransactionManager executes the callback immediately with a fixed
// factory, so service tests exercise their transactional closures.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StaticRepositoryFactory hands out fixed repository instances.
type StaticRepositoryFactory struct {
	Divers   repository.DiverRepository
	DiveLogs repository.DiveLogRepository
}

func (f *StaticRepositoryFactory) DiverRepo() repository.DiverRepository {
	return f.Divers
}

func (f *StaticRepositoryFactory) DiveLogRepo() repository.DiveLogRepository {
	return f.DiveLogs
}
