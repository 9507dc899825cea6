package workspace

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/generation"
)

var _ companyStore = &companyStoreMock{}

type companyStoreMock struct {
	GetCompanyFunc  func(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	SaveCompanyFunc func(ctx context.Context, c domain.Company) (*domain.Company, error)

	calls struct {
		GetCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		SaveCompany []struct {
			Ctx context.Context
			C   domain.Company
		}
	}
	lockGetCompany  sync.RWMutex
	lockSaveCompany sync.RWMutex
}

func (mock *companyStoreMock) GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	if mock.GetCompanyFunc == nil {
		panic("companyStoreMock.GetCompanyFunc: method is nil but companyStore.GetCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockGetCompany.Lock()
	mock.calls.GetCompany = append(mock.calls.GetCompany, callInfo)
	mock.lockGetCompany.Unlock()
	return mock.GetCompanyFunc(ctx, companyID)
}

func (mock *companyStoreMock) GetCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockGetCompany.RLock()
	calls = mock.calls.GetCompany
	mock.lockGetCompany.RUnlock()
	return calls
}

func (mock *companyStoreMock) SaveCompany(ctx context.Context, c domain.Company) (*domain.Company, error) {
	if mock.SaveCompanyFunc == nil {
		panic("companyStoreMock.SaveCompanyFunc: method is nil but companyStore.SaveCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Company
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockSaveCompany.Lock()
	mock.calls.SaveCompany = append(mock.calls.SaveCompany, callInfo)
	mock.lockSaveCompany.Unlock()
	return mock.SaveCompanyFunc(ctx, c)
}

func (mock *companyStoreMock) SaveCompanyCalls() []struct {
	Ctx context.Context
	C   domain.Company
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Company
	}
	mock.lockSaveCompany.RLock()
	calls = mock.calls.SaveCompany
	mock.lockSaveCompany.RUnlock()
	return calls
}

var _ interviewStore = &interviewStoreMock{}

type interviewStoreMock struct {
	GetInterviewFunc  func(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error)
	SaveInterviewFunc func(ctx context.Context, iv domain.Interview) (*domain.Interview, error)

	calls struct {
		GetInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		SaveInterview []struct {
			Ctx context.Context
			Iv  domain.Interview
		}
	}
	lockGetInterview  sync.RWMutex
	lockSaveInterview sync.RWMutex
}

func (mock *interviewStoreMock) GetInterview(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error) {
	if mock.GetInterviewFunc == nil {
		panic("interviewStoreMock.GetInterviewFunc: method is nil but interviewStore.GetInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockGetInterview.Lock()
	mock.calls.GetInterview = append(mock.calls.GetInterview, callInfo)
	mock.lockGetInterview.Unlock()
	return mock.GetInterviewFunc(ctx, interviewID)
}

func (mock *interviewStoreMock) GetInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockGetInterview.RLock()
	calls = mock.calls.GetInterview
	mock.lockGetInterview.RUnlock()
	return calls
}

func (mock *interviewStoreMock) SaveInterview(ctx context.Context, iv domain.Interview) (*domain.Interview, error) {
	if mock.SaveInterviewFunc == nil {
		panic("interviewStoreMock.SaveInterviewFunc: method is nil but interviewStore.SaveInterview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Iv  domain.Interview
	}{
		Ctx: ctx,
		Iv:  iv,
	}
	mock.lockSaveInterview.Lock()
	mock.calls.SaveInterview = append(mock.calls.SaveInterview, callInfo)
	mock.lockSaveInterview.Unlock()
	return mock.SaveInterviewFunc(ctx, iv)
}

func (mock *interviewStoreMock) SaveInterviewCalls() []struct {
	Ctx context.Context
	Iv  domain.Interview
} {
	var calls []struct {
		Ctx context.Context
		Iv  domain.Interview
	}
	mock.lockSaveInterview.RLock()
	calls = mock.calls.SaveInterview
	mock.lockSaveInterview.RUnlock()
	return calls
}

var _ researcher = &researcherMock{}

type researcherMock struct {
	ResearchCompanyFunc func(ctx context.Context, req generation.CompanyResearchRequest) (map[string]domain.InfoField, error)

	calls struct {
		ResearchCompany []struct {
			Ctx context.Context
			Req generation.CompanyResearchRequest
		}
	}
	lockResearchCompany sync.RWMutex
}

func (mock *researcherMock) ResearchCompany(ctx context.Context, req generation.CompanyResearchRequest) (map[string]domain.InfoField, error) {
	if mock.ResearchCompanyFunc == nil {
		panic("researcherMock.ResearchCompanyFunc: method is nil but researcher.ResearchCompany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req generation.CompanyResearchRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockResearchCompany.Lock()
	mock.calls.ResearchCompany = append(mock.calls.ResearchCompany, callInfo)
	mock.lockResearchCompany.Unlock()
	return mock.ResearchCompanyFunc(ctx, req)
}

func (mock *researcherMock) ResearchCompanyCalls() []struct {
	Ctx context.Context
	Req generation.CompanyResearchRequest
} {
	var calls []struct {
		Ctx context.Context
		Req generation.CompanyResearchRequest
	}
	mock.lockResearchCompany.RLock()
	calls = mock.calls.ResearchCompany
	mock.lockResearchCompany.RUnlock()
	return calls
}

var _ recorder = &recorderMock{}

type recorderMock struct {
	ObserveDraftFunc func(kind string, op string, err error)

	calls struct {
		ObserveDraft []struct {
			Kind string
			Op   string
			Err  error
		}
	}
	lockObserveDraft sync.RWMutex
}

func (mock *recorderMock) ObserveDraft(kind string, op string, err error) {
	if mock.ObserveDraftFunc == nil {
		panic("recorderMock.ObserveDraftFunc: method is nil but recorder.ObserveDraft was just called")
	}
	callInfo := struct {
		Kind string
		Op   string
		Err  error
	}{
		Kind: kind,
		Op:   op,
		Err:  err,
	}
	mock.lockObserveDraft.Lock()
	mock.calls.ObserveDraft = append(mock.calls.ObserveDraft, callInfo)
	mock.lockObserveDraft.Unlock()
	mock.ObserveDraftFunc(kind, op, err)
}

func (mock *recorderMock) ObserveDraftCalls() []struct {
	Kind string
	Op   string
	Err  error
} {
	var calls []struct {
		Kind string
		Op   string
		Err  error
	}
	mock.lockObserveDraft.RLock()
	calls = mock.calls.ObserveDraft
	mock.lockObserveDraft.RUnlock()
	return calls
}
