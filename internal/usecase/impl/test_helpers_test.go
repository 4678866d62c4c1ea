package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "scubakeep/internal/mocks/repository"
	mockSvc "scubakeep/internal/mocks/service"
	"scubakeep/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// diverServiceFixtures holds all test dependencies for diver service tests.
// The transaction manager is a passthrough, so the transactional closures run
// against the same mocks as the direct repository calls.
type diverServiceFixtures struct {
	service       usecase.DiverUsecase
	diverRepo     *mockRepo.MockDiverRepository
	diveLogRepo   *mockRepo.MockDiveLogRepository
	hasher        *mockSvc.MockPasswordHasher
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestDiverService(t *testing.T) diverServiceFixtures {
	t.Helper()

	diverRepo := &mockRepo.MockDiverRepository{}
	diveLogRepo := &mockRepo.MockDiveLogRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	qrcodeService := &mockSvc.MockQRCodeService{}

	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{
			Divers:   diverRepo,
			DiveLogs: diveLogRepo,
		},
	}

	service := NewDiverService(DiverServiceParams{
		TxManager:     txManager,
		DiverRepo:     diverRepo,
		Hasher:        hasher,
		QRCodeService: qrcodeService,
		Logger:        discardLogger(),
	})

	return diverServiceFixtures{
		service:       service,
		diverRepo:     diverRepo,
		diveLogRepo:   diveLogRepo,
		hasher:        hasher,
		qrcodeService: qrcodeService,
	}
}

// diveLogServiceFixtures holds all test dependencies for dive log service tests.
type diveLogServiceFixtures struct {
	service     usecase.DiveLogUsecase
	diverRepo   *mockRepo.MockDiverRepository
	diveLogRepo *mockRepo.MockDiveLogRepository
}

func createTestDiveLogService(t *testing.T) diveLogServiceFixtures {
	t.Helper()

	diverRepo := &mockRepo.MockDiverRepository{}
	diveLogRepo := &mockRepo.MockDiveLogRepository{}

	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{
			Divers:   diverRepo,
			DiveLogs: diveLogRepo,
		},
	}

	service := NewDiveLogService(DiveLogServiceParams{
		TxManager:   txManager,
		DiveLogRepo: diveLogRepo,
		Logger:      discardLogger(),
	})

	return diveLogServiceFixtures{
		service:     service,
		diverRepo:   diverRepo,
		diveLogRepo: diveLogRepo,
	}
}

// authServiceFixtures holds all test dependencies for auth service tests.
// The diver usecase is the real implementation wired to the same mocks, so
// registration flows end to end through both services.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	diverRepo    *mockRepo.MockDiverRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	diverFx := createTestDiverService(t)
	tokenService := &mockSvc.MockTokenService{}

	service := NewAuthService(AuthServiceParams{
		DiverRepo:    diverFx.diverRepo,
		DiverUsecase: diverFx.service,
		Hasher:       diverFx.hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		diverRepo:    diverFx.diverRepo,
		hasher:       diverFx.hasher,
		tokenService: tokenService,
	}
}
