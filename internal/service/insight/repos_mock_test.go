package insight

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

var _ applicationRepo = &applicationRepoMock{}

type applicationRepoMock struct {
	ListAllFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Application, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListAll sync.RWMutex
}

func (mock *applicationRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error) {
	if mock.ListAllFunc == nil {
		panic("applicationRepoMock.ListAllFunc: method is nil but applicationRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *applicationRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	ListAllFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Contact, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListAll sync.RWMutex
}

func (mock *contactRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Contact, error) {
	if mock.ListAllFunc == nil {
		panic("contactRepoMock.ListAllFunc: method is nil but contactRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *contactRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	ListAllFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListAll sync.RWMutex
}

func (mock *postRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	if mock.ListAllFunc == nil {
		panic("postRepoMock.ListAllFunc: method is nil but postRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *postRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

var _ engagementRepo = &engagementRepoMock{}

type engagementRepoMock struct {
	ListAllFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Engagement, error)

	calls struct {
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListAll sync.RWMutex
}

func (mock *engagementRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Engagement, error) {
	if mock.ListAllFunc == nil {
		panic("engagementRepoMock.ListAllFunc: method is nil but engagementRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *engagementRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

var _ goalsRepo = &goalsRepoMock{}

type goalsRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.WeeklyGoals, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *goalsRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.WeeklyGoals, error) {
	if mock.GetFunc == nil {
		panic("goalsRepoMock.GetFunc: method is nil but goalsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *goalsRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

var _ companyRepo = &companyRepoMock{}

type companyRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*domain.Company, error)
	ListAllFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Company, error)

	calls struct {
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			CompanyID uuid.UUID
		}
		ListAll []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockListAll sync.RWMutex
}

func (mock *companyRepoMock) GetByID(ctx context.Context, userID uuid.UUID, companyID uuid.UUID) (*domain.Company, error) {
	if mock.GetByIDFunc == nil {
		panic("companyRepoMock.GetByIDFunc: method is nil but companyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		UserID:    userID,
		CompanyID: companyID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, companyID)
}

func (mock *companyRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    uuid.UUID
		CompanyID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *companyRepoMock) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Company, error) {
	if mock.ListAllFunc == nil {
		panic("companyRepoMock.ListAllFunc: method is nil but companyRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, userID)
}

func (mock *companyRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
