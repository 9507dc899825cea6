package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/generation"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/insight"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/network"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/pipeline"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/review"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/workspace"
)

var _ pipelineService = &pipelineServiceMock{}

type pipelineServiceMock struct {
	CreateApplicationFunc func(ctx context.Context, input pipeline.CreateApplicationInput) (*domain.Application, error)
	GetApplicationFunc    func(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error)
	UpdateApplicationFunc func(ctx context.Context, input pipeline.UpdateApplicationInput) (*domain.Application, error)
	DeleteApplicationFunc func(ctx context.Context, applicationID uuid.UUID) error
	ListApplicationsFunc  func(ctx context.Context, input pipeline.ListApplicationsInput) ([]domain.Application, error)
	CreateInterviewFunc   func(ctx context.Context, input pipeline.CreateInterviewInput) (*domain.Interview, error)
	GetInterviewFunc      func(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error)
	UpdateInterviewFunc   func(ctx context.Context, input pipeline.UpdateInterviewInput) (*domain.Interview, error)
	DeleteInterviewFunc   func(ctx context.Context, interviewID uuid.UUID) error
	GetInterviewDeckFunc  func(ctx context.Context, interviewID uuid.UUID) (*pipeline.InterviewDeck, error)

	calls struct {
		CreateApplication []struct {
			Ctx   context.Context
			Input pipeline.CreateApplicationInput
		}
		GetApplication []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
		}
		UpdateApplication []struct {
			Ctx   context.Context
			Input pipeline.UpdateApplicationInput
		}
		DeleteApplication []struct {
			Ctx           context.Context
			ApplicationID uuid.UUID
		}
		ListApplications []struct {
			Ctx   context.Context
			Input pipeline.ListApplicationsInput
		}
		CreateInterview []struct {
			Ctx   context.Context
			Input pipeline.CreateInterviewInput
		}
		GetInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		UpdateInterview []struct {
			Ctx   context.Context
			Input pipeline.UpdateInterviewInput
		}
		DeleteInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		GetInterviewDeck []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
	}
	lockCreateApplication sync.RWMutex
	lockGetApplication    sync.RWMutex
	lockUpdateApplication sync.RWMutex
	lockDeleteApplication sync.RWMutex
	lockListApplications  sync.RWMutex
	lockCreateInterview   sync.RWMutex
	lockGetInterview      sync.RWMutex
	lockUpdateInterview   sync.RWMutex
	lockDeleteInterview   sync.RWMutex
	lockGetInterviewDeck  sync.RWMutex
}

func (mock *pipelineServiceMock) CreateApplication(ctx context.Context, input pipeline.CreateApplicationInput) (*domain.Application, error) {
	if mock.CreateApplicationFunc == nil {
		panic("pipelineServiceMock.CreateApplicationFunc: method is nil but pipelineService.CreateApplication was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.CreateApplicationInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateApplication.Lock()
	mock.calls.CreateApplication = append(mock.calls.CreateApplication, callInfo)
	mock.lockCreateApplication.Unlock()
	return mock.CreateApplicationFunc(ctx, input)
}

func (mock *pipelineServiceMock) CreateApplicationCalls() []struct {
	Ctx   context.Context
	Input pipeline.CreateApplicationInput
} {
	var calls []struct {
		Ctx   context.Context
		Input pipeline.CreateApplicationInput
	}
	mock.lockCreateApplication.RLock()
	calls = mock.calls.CreateApplication
	mock.lockCreateApplication.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) GetApplication(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	if mock.GetApplicationFunc == nil {
		panic("pipelineServiceMock.GetApplicationFunc: method is nil but pipelineService.GetApplication was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}{
		Ctx:           ctx,
		ApplicationID: applicationID,
	}
	mock.lockGetApplication.Lock()
	mock.calls.GetApplication = append(mock.calls.GetApplication, callInfo)
	mock.lockGetApplication.Unlock()
	return mock.GetApplicationFunc(ctx, applicationID)
}

func (mock *pipelineServiceMock) GetApplicationCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}
	mock.lockGetApplication.RLock()
	calls = mock.calls.GetApplication
	mock.lockGetApplication.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) UpdateApplication(ctx context.Context, input pipeline.UpdateApplicationInput) (*domain.Application, error) {
	if mock.UpdateApplicationFunc == nil {
		panic("pipelineServiceMock.UpdateApplicationFunc: method is nil but pipelineService.UpdateApplication was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.UpdateApplicationInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateApplication.Lock()
	mock.calls.UpdateApplication = append(mock.calls.UpdateApplication, callInfo)
	mock.lockUpdateApplication.Unlock()
	return mock.UpdateApplicationFunc(ctx, input)
}

func (mock *pipelineServiceMock) UpdateApplicationCalls() []struct {
	Ctx   context.Context
	Input pipeline.UpdateApplicationInput
} {
	var calls []struct {
		Ctx   context.Context
		Input pipeline.UpdateApplicationInput
	}
	mock.lockUpdateApplication.RLock()
	calls = mock.calls.UpdateApplication
	mock.lockUpdateApplication.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) DeleteApplication(ctx context.Context, applicationID uuid.UUID) error {
	if mock.DeleteApplicationFunc == nil {
		panic("pipelineServiceMock.DeleteApplicationFunc: method is nil but pipelineService.DeleteApplication was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}{
		Ctx:           ctx,
		ApplicationID: applicationID,
	}
	mock.lockDeleteApplication.Lock()
	mock.calls.DeleteApplication = append(mock.calls.DeleteApplication, callInfo)
	mock.lockDeleteApplication.Unlock()
	return mock.DeleteApplicationFunc(ctx, applicationID)
}

func (mock *pipelineServiceMock) DeleteApplicationCalls() []struct {
	Ctx           context.Context
	ApplicationID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		ApplicationID uuid.UUID
	}
	mock.lockDeleteApplication.RLock()
	calls = mock.calls.DeleteApplication
	mock.lockDeleteApplication.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) ListApplications(ctx context.Context, input pipeline.ListApplicationsInput) ([]domain.Application, error) {
	if mock.ListApplicationsFunc == nil {
		panic("pipelineServiceMock.ListApplicationsFunc: method is nil but pipelineService.ListApplications was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.ListApplicationsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListApplications.Lock()
	mock.calls.ListApplications = append(mock.calls.ListApplications, callInfo)
	mock.lockListApplications.Unlock()
	return mock.ListApplicationsFunc(ctx, input)
}

func (mock *pipelineServiceMock) ListApplicationsCalls() []struct {
	Ctx   context.Context
	Input pipeline.ListApplicationsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input pipeline.ListApplicationsInput
	}
	mock.lockListApplications.RLock()
	calls = mock.calls.ListApplications
	mock.lockListApplications.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) CreateInterview(ctx context.Context, input pipeline.CreateInterviewInput) (*domain.Interview, error) {
	if mock.CreateInterviewFunc == nil {
		panic("pipelineServiceMock.CreateInterviewFunc: method is nil but pipelineService.CreateInterview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.CreateInterviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateInterview.Lock()
	mock.calls.CreateInterview = append(mock.calls.CreateInterview, callInfo)
	mock.lockCreateInterview.Unlock()
	return mock.CreateInterviewFunc(ctx, input)
}

func (mock *pipelineServiceMock) CreateInterviewCalls() []struct {
	Ctx   context.Context
	Input pipeline.CreateInterviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input pipeline.CreateInterviewInput
	}
	mock.lockCreateInterview.RLock()
	calls = mock.calls.CreateInterview
	mock.lockCreateInterview.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) GetInterview(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error) {
	if mock.GetInterviewFunc == nil {
		panic("pipelineServiceMock.GetInterviewFunc: method is nil but pipelineService.GetInterview was just called")
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

func (mock *pipelineServiceMock) GetInterviewCalls() []struct {
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

func (mock *pipelineServiceMock) UpdateInterview(ctx context.Context, input pipeline.UpdateInterviewInput) (*domain.Interview, error) {
	if mock.UpdateInterviewFunc == nil {
		panic("pipelineServiceMock.UpdateInterviewFunc: method is nil but pipelineService.UpdateInterview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input pipeline.UpdateInterviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateInterview.Lock()
	mock.calls.UpdateInterview = append(mock.calls.UpdateInterview, callInfo)
	mock.lockUpdateInterview.Unlock()
	return mock.UpdateInterviewFunc(ctx, input)
}

func (mock *pipelineServiceMock) UpdateInterviewCalls() []struct {
	Ctx   context.Context
	Input pipeline.UpdateInterviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input pipeline.UpdateInterviewInput
	}
	mock.lockUpdateInterview.RLock()
	calls = mock.calls.UpdateInterview
	mock.lockUpdateInterview.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) DeleteInterview(ctx context.Context, interviewID uuid.UUID) error {
	if mock.DeleteInterviewFunc == nil {
		panic("pipelineServiceMock.DeleteInterviewFunc: method is nil but pipelineService.DeleteInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockDeleteInterview.Lock()
	mock.calls.DeleteInterview = append(mock.calls.DeleteInterview, callInfo)
	mock.lockDeleteInterview.Unlock()
	return mock.DeleteInterviewFunc(ctx, interviewID)
}

func (mock *pipelineServiceMock) DeleteInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockDeleteInterview.RLock()
	calls = mock.calls.DeleteInterview
	mock.lockDeleteInterview.RUnlock()
	return calls
}

func (mock *pipelineServiceMock) GetInterviewDeck(ctx context.Context, interviewID uuid.UUID) (*pipeline.InterviewDeck, error) {
	if mock.GetInterviewDeckFunc == nil {
		panic("pipelineServiceMock.GetInterviewDeckFunc: method is nil but pipelineService.GetInterviewDeck was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockGetInterviewDeck.Lock()
	mock.calls.GetInterviewDeck = append(mock.calls.GetInterviewDeck, callInfo)
	mock.lockGetInterviewDeck.Unlock()
	return mock.GetInterviewDeckFunc(ctx, interviewID)
}

func (mock *pipelineServiceMock) GetInterviewDeckCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockGetInterviewDeck.RLock()
	calls = mock.calls.GetInterviewDeck
	mock.lockGetInterviewDeck.RUnlock()
	return calls
}

var _ networkService = &networkServiceMock{}

type networkServiceMock struct {
	CreateCompanyFunc  func(ctx context.Context, input network.CreateCompanyInput) (*domain.Company, error)
	GetCompanyFunc     func(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	UpdateCompanyFunc  func(ctx context.Context, input network.UpdateCompanyInput) (*domain.Company, error)
	DeleteCompanyFunc  func(ctx context.Context, companyID uuid.UUID) error
	ListCompaniesFunc  func(ctx context.Context, page domain.Page) ([]domain.Company, error)
	CreateContactFunc  func(ctx context.Context, input network.CreateContactInput) (*domain.Contact, error)
	GetContactFunc     func(ctx context.Context, contactID uuid.UUID) (*domain.Contact, error)
	UpdateContactFunc  func(ctx context.Context, input network.UpdateContactInput) (*domain.Contact, error)
	TagNarrativeFunc   func(ctx context.Context, contactID uuid.UUID, narrativeID uuid.UUID) (*domain.Contact, error)
	UntagNarrativeFunc func(ctx context.Context, contactID uuid.UUID, narrativeID uuid.UUID) (*domain.Contact, error)
	DeleteContactFunc  func(ctx context.Context, contactID uuid.UUID) error
	ListContactsFunc   func(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error)
	CreateMessageFunc  func(ctx context.Context, input network.CreateMessageInput) (*domain.Message, error)
	ListMessagesFunc   func(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error)
	DeleteMessageFunc  func(ctx context.Context, messageID uuid.UUID) error

	calls struct {
		CreateCompany []struct {
			Ctx   context.Context
			Input network.CreateCompanyInput
		}
		GetCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		UpdateCompany []struct {
			Ctx   context.Context
			Input network.UpdateCompanyInput
		}
		DeleteCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		ListCompanies []struct {
			Ctx  context.Context
			Page domain.Page
		}
		CreateContact []struct {
			Ctx   context.Context
			Input network.CreateContactInput
		}
		GetContact []struct {
			Ctx       context.Context
			ContactID uuid.UUID
		}
		UpdateContact []struct {
			Ctx   context.Context
			Input network.UpdateContactInput
		}
		TagNarrative []struct {
			Ctx         context.Context
			ContactID   uuid.UUID
			NarrativeID uuid.UUID
		}
		UntagNarrative []struct {
			Ctx         context.Context
			ContactID   uuid.UUID
			NarrativeID uuid.UUID
		}
		DeleteContact []struct {
			Ctx       context.Context
			ContactID uuid.UUID
		}
		ListContacts []struct {
			Ctx    context.Context
			Filter domain.ContactFilter
		}
		CreateMessage []struct {
			Ctx   context.Context
			Input network.CreateMessageInput
		}
		ListMessages []struct {
			Ctx    context.Context
			Filter domain.MessageFilter
		}
		DeleteMessage []struct {
			Ctx       context.Context
			MessageID uuid.UUID
		}
	}
	lockCreateCompany  sync.RWMutex
	lockGetCompany     sync.RWMutex
	lockUpdateCompany  sync.RWMutex
	lockDeleteCompany  sync.RWMutex
	lockListCompanies  sync.RWMutex
	lockCreateContact  sync.RWMutex
	lockGetContact     sync.RWMutex
	lockUpdateContact  sync.RWMutex
	lockTagNarrative   sync.RWMutex
	lockUntagNarrative sync.RWMutex
	lockDeleteContact  sync.RWMutex
	lockListContacts   sync.RWMutex
	lockCreateMessage  sync.RWMutex
	lockListMessages   sync.RWMutex
	lockDeleteMessage  sync.RWMutex
}

func (mock *networkServiceMock) CreateCompany(ctx context.Context, input network.CreateCompanyInput) (*domain.Company, error) {
	if mock.CreateCompanyFunc == nil {
		panic("networkServiceMock.CreateCompanyFunc: method is nil but networkService.CreateCompany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input network.CreateCompanyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateCompany.Lock()
	mock.calls.CreateCompany = append(mock.calls.CreateCompany, callInfo)
	mock.lockCreateCompany.Unlock()
	return mock.CreateCompanyFunc(ctx, input)
}

func (mock *networkServiceMock) CreateCompanyCalls() []struct {
	Ctx   context.Context
	Input network.CreateCompanyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input network.CreateCompanyInput
	}
	mock.lockCreateCompany.RLock()
	calls = mock.calls.CreateCompany
	mock.lockCreateCompany.RUnlock()
	return calls
}

func (mock *networkServiceMock) GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	if mock.GetCompanyFunc == nil {
		panic("networkServiceMock.GetCompanyFunc: method is nil but networkService.GetCompany was just called")
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

func (mock *networkServiceMock) GetCompanyCalls() []struct {
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

func (mock *networkServiceMock) UpdateCompany(ctx context.Context, input network.UpdateCompanyInput) (*domain.Company, error) {
	if mock.UpdateCompanyFunc == nil {
		panic("networkServiceMock.UpdateCompanyFunc: method is nil but networkService.UpdateCompany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input network.UpdateCompanyInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateCompany.Lock()
	mock.calls.UpdateCompany = append(mock.calls.UpdateCompany, callInfo)
	mock.lockUpdateCompany.Unlock()
	return mock.UpdateCompanyFunc(ctx, input)
}

func (mock *networkServiceMock) UpdateCompanyCalls() []struct {
	Ctx   context.Context
	Input network.UpdateCompanyInput
} {
	var calls []struct {
		Ctx   context.Context
		Input network.UpdateCompanyInput
	}
	mock.lockUpdateCompany.RLock()
	calls = mock.calls.UpdateCompany
	mock.lockUpdateCompany.RUnlock()
	return calls
}

func (mock *networkServiceMock) DeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	if mock.DeleteCompanyFunc == nil {
		panic("networkServiceMock.DeleteCompanyFunc: method is nil but networkService.DeleteCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockDeleteCompany.Lock()
	mock.calls.DeleteCompany = append(mock.calls.DeleteCompany, callInfo)
	mock.lockDeleteCompany.Unlock()
	return mock.DeleteCompanyFunc(ctx, companyID)
}

func (mock *networkServiceMock) DeleteCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockDeleteCompany.RLock()
	calls = mock.calls.DeleteCompany
	mock.lockDeleteCompany.RUnlock()
	return calls
}

func (mock *networkServiceMock) ListCompanies(ctx context.Context, page domain.Page) ([]domain.Company, error) {
	if mock.ListCompaniesFunc == nil {
		panic("networkServiceMock.ListCompaniesFunc: method is nil but networkService.ListCompanies was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockListCompanies.Lock()
	mock.calls.ListCompanies = append(mock.calls.ListCompanies, callInfo)
	mock.lockListCompanies.Unlock()
	return mock.ListCompaniesFunc(ctx, page)
}

func (mock *networkServiceMock) ListCompaniesCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Page domain.Page
	}
	mock.lockListCompanies.RLock()
	calls = mock.calls.ListCompanies
	mock.lockListCompanies.RUnlock()
	return calls
}

func (mock *networkServiceMock) CreateContact(ctx context.Context, input network.CreateContactInput) (*domain.Contact, error) {
	if mock.CreateContactFunc == nil {
		panic("networkServiceMock.CreateContactFunc: method is nil but networkService.CreateContact was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input network.CreateContactInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateContact.Lock()
	mock.calls.CreateContact = append(mock.calls.CreateContact, callInfo)
	mock.lockCreateContact.Unlock()
	return mock.CreateContactFunc(ctx, input)
}

func (mock *networkServiceMock) CreateContactCalls() []struct {
	Ctx   context.Context
	Input network.CreateContactInput
} {
	var calls []struct {
		Ctx   context.Context
		Input network.CreateContactInput
	}
	mock.lockCreateContact.RLock()
	calls = mock.calls.CreateContact
	mock.lockCreateContact.RUnlock()
	return calls
}

func (mock *networkServiceMock) GetContact(ctx context.Context, contactID uuid.UUID) (*domain.Contact, error) {
	if mock.GetContactFunc == nil {
		panic("networkServiceMock.GetContactFunc: method is nil but networkService.GetContact was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContactID uuid.UUID
	}{
		Ctx:       ctx,
		ContactID: contactID,
	}
	mock.lockGetContact.Lock()
	mock.calls.GetContact = append(mock.calls.GetContact, callInfo)
	mock.lockGetContact.Unlock()
	return mock.GetContactFunc(ctx, contactID)
}

func (mock *networkServiceMock) GetContactCalls() []struct {
	Ctx       context.Context
	ContactID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ContactID uuid.UUID
	}
	mock.lockGetContact.RLock()
	calls = mock.calls.GetContact
	mock.lockGetContact.RUnlock()
	return calls
}

func (mock *networkServiceMock) UpdateContact(ctx context.Context, input network.UpdateContactInput) (*domain.Contact, error) {
	if mock.UpdateContactFunc == nil {
		panic("networkServiceMock.UpdateContactFunc: method is nil but networkService.UpdateContact was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input network.UpdateContactInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateContact.Lock()
	mock.calls.UpdateContact = append(mock.calls.UpdateContact, callInfo)
	mock.lockUpdateContact.Unlock()
	return mock.UpdateContactFunc(ctx, input)
}

func (mock *networkServiceMock) UpdateContactCalls() []struct {
	Ctx   context.Context
	Input network.UpdateContactInput
} {
	var calls []struct {
		Ctx   context.Context
		Input network.UpdateContactInput
	}
	mock.lockUpdateContact.RLock()
	calls = mock.calls.UpdateContact
	mock.lockUpdateContact.RUnlock()
	return calls
}

func (mock *networkServiceMock) TagNarrative(ctx context.Context, contactID uuid.UUID, narrativeID uuid.UUID) (*domain.Contact, error) {
	if mock.TagNarrativeFunc == nil {
		panic("networkServiceMock.TagNarrativeFunc: method is nil but networkService.TagNarrative was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ContactID   uuid.UUID
		NarrativeID uuid.UUID
	}{
		Ctx:         ctx,
		ContactID:   contactID,
		NarrativeID: narrativeID,
	}
	mock.lockTagNarrative.Lock()
	mock.calls.TagNarrative = append(mock.calls.TagNarrative, callInfo)
	mock.lockTagNarrative.Unlock()
	return mock.TagNarrativeFunc(ctx, contactID, narrativeID)
}

func (mock *networkServiceMock) TagNarrativeCalls() []struct {
	Ctx         context.Context
	ContactID   uuid.UUID
	NarrativeID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		ContactID   uuid.UUID
		NarrativeID uuid.UUID
	}
	mock.lockTagNarrative.RLock()
	calls = mock.calls.TagNarrative
	mock.lockTagNarrative.RUnlock()
	return calls
}

func (mock *networkServiceMock) UntagNarrative(ctx context.Context, contactID uuid.UUID, narrativeID uuid.UUID) (*domain.Contact, error) {
	if mock.UntagNarrativeFunc == nil {
		panic("networkServiceMock.UntagNarrativeFunc: method is nil but networkService.UntagNarrative was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ContactID   uuid.UUID
		NarrativeID uuid.UUID
	}{
		Ctx:         ctx,
		ContactID:   contactID,
		NarrativeID: narrativeID,
	}
	mock.lockUntagNarrative.Lock()
	mock.calls.UntagNarrative = append(mock.calls.UntagNarrative, callInfo)
	mock.lockUntagNarrative.Unlock()
	return mock.UntagNarrativeFunc(ctx, contactID, narrativeID)
}

func (mock *networkServiceMock) UntagNarrativeCalls() []struct {
	Ctx         context.Context
	ContactID   uuid.UUID
	NarrativeID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		ContactID   uuid.UUID
		NarrativeID uuid.UUID
	}
	mock.lockUntagNarrative.RLock()
	calls = mock.calls.UntagNarrative
	mock.lockUntagNarrative.RUnlock()
	return calls
}

func (mock *networkServiceMock) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	if mock.DeleteContactFunc == nil {
		panic("networkServiceMock.DeleteContactFunc: method is nil but networkService.DeleteContact was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContactID uuid.UUID
	}{
		Ctx:       ctx,
		ContactID: contactID,
	}
	mock.lockDeleteContact.Lock()
	mock.calls.DeleteContact = append(mock.calls.DeleteContact, callInfo)
	mock.lockDeleteContact.Unlock()
	return mock.DeleteContactFunc(ctx, contactID)
}

func (mock *networkServiceMock) DeleteContactCalls() []struct {
	Ctx       context.Context
	ContactID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ContactID uuid.UUID
	}
	mock.lockDeleteContact.RLock()
	calls = mock.calls.DeleteContact
	mock.lockDeleteContact.RUnlock()
	return calls
}

func (mock *networkServiceMock) ListContacts(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error) {
	if mock.ListContactsFunc == nil {
		panic("networkServiceMock.ListContactsFunc: method is nil but networkService.ListContacts was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ContactFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListContacts.Lock()
	mock.calls.ListContacts = append(mock.calls.ListContacts, callInfo)
	mock.lockListContacts.Unlock()
	return mock.ListContactsFunc(ctx, filter)
}

func (mock *networkServiceMock) ListContactsCalls() []struct {
	Ctx    context.Context
	Filter domain.ContactFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.ContactFilter
	}
	mock.lockListContacts.RLock()
	calls = mock.calls.ListContacts
	mock.lockListContacts.RUnlock()
	return calls
}

func (mock *networkServiceMock) CreateMessage(ctx context.Context, input network.CreateMessageInput) (*domain.Message, error) {
	if mock.CreateMessageFunc == nil {
		panic("networkServiceMock.CreateMessageFunc: method is nil but networkService.CreateMessage was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input network.CreateMessageInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateMessage.Lock()
	mock.calls.CreateMessage = append(mock.calls.CreateMessage, callInfo)
	mock.lockCreateMessage.Unlock()
	return mock.CreateMessageFunc(ctx, input)
}

func (mock *networkServiceMock) CreateMessageCalls() []struct {
	Ctx   context.Context
	Input network.CreateMessageInput
} {
	var calls []struct {
		Ctx   context.Context
		Input network.CreateMessageInput
	}
	mock.lockCreateMessage.RLock()
	calls = mock.calls.CreateMessage
	mock.lockCreateMessage.RUnlock()
	return calls
}

func (mock *networkServiceMock) ListMessages(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	if mock.ListMessagesFunc == nil {
		panic("networkServiceMock.ListMessagesFunc: method is nil but networkService.ListMessages was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.MessageFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockListMessages.Lock()
	mock.calls.ListMessages = append(mock.calls.ListMessages, callInfo)
	mock.lockListMessages.Unlock()
	return mock.ListMessagesFunc(ctx, filter)
}

func (mock *networkServiceMock) ListMessagesCalls() []struct {
	Ctx    context.Context
	Filter domain.MessageFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.MessageFilter
	}
	mock.lockListMessages.RLock()
	calls = mock.calls.ListMessages
	mock.lockListMessages.RUnlock()
	return calls
}

func (mock *networkServiceMock) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	if mock.DeleteMessageFunc == nil {
		panic("networkServiceMock.DeleteMessageFunc: method is nil but networkService.DeleteMessage was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MessageID uuid.UUID
	}{
		Ctx:       ctx,
		MessageID: messageID,
	}
	mock.lockDeleteMessage.Lock()
	mock.calls.DeleteMessage = append(mock.calls.DeleteMessage, callInfo)
	mock.lockDeleteMessage.Unlock()
	return mock.DeleteMessageFunc(ctx, messageID)
}

func (mock *networkServiceMock) DeleteMessageCalls() []struct {
	Ctx       context.Context
	MessageID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		MessageID uuid.UUID
	}
	mock.lockDeleteMessage.RLock()
	calls = mock.calls.DeleteMessage
	mock.lockDeleteMessage.RUnlock()
	return calls
}

var _ insightService = &insightServiceMock{}

type insightServiceMock struct {
	GetDashboardFunc      func(ctx context.Context) (insight.Dashboard, error)
	CompareNarrativesFunc func(ctx context.Context, a uuid.UUID, b uuid.UUID) (insight.Comparison, error)
	MatchCompetitorsFunc  func(ctx context.Context, companyID uuid.UUID) ([]insight.CompetitorMatch, error)

	calls struct {
		GetDashboard []struct {
			Ctx context.Context
		}
		CompareNarratives []struct {
			Ctx context.Context
			A   uuid.UUID
			B   uuid.UUID
		}
		MatchCompetitors []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
	}
	lockGetDashboard      sync.RWMutex
	lockCompareNarratives sync.RWMutex
	lockMatchCompetitors  sync.RWMutex
}

func (mock *insightServiceMock) GetDashboard(ctx context.Context) (insight.Dashboard, error) {
	if mock.GetDashboardFunc == nil {
		panic("insightServiceMock.GetDashboardFunc: method is nil but insightService.GetDashboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetDashboard.Lock()
	mock.calls.GetDashboard = append(mock.calls.GetDashboard, callInfo)
	mock.lockGetDashboard.Unlock()
	return mock.GetDashboardFunc(ctx)
}

func (mock *insightServiceMock) GetDashboardCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetDashboard.RLock()
	calls = mock.calls.GetDashboard
	mock.lockGetDashboard.RUnlock()
	return calls
}

func (mock *insightServiceMock) CompareNarratives(ctx context.Context, a uuid.UUID, b uuid.UUID) (insight.Comparison, error) {
	if mock.CompareNarrativesFunc == nil {
		panic("insightServiceMock.CompareNarrativesFunc: method is nil but insightService.CompareNarratives was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}{
		Ctx: ctx,
		A:   a,
		B:   b,
	}
	mock.lockCompareNarratives.Lock()
	mock.calls.CompareNarratives = append(mock.calls.CompareNarratives, callInfo)
	mock.lockCompareNarratives.Unlock()
	return mock.CompareNarrativesFunc(ctx, a, b)
}

func (mock *insightServiceMock) CompareNarrativesCalls() []struct {
	Ctx context.Context
	A   uuid.UUID
	B   uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		A   uuid.UUID
		B   uuid.UUID
	}
	mock.lockCompareNarratives.RLock()
	calls = mock.calls.CompareNarratives
	mock.lockCompareNarratives.RUnlock()
	return calls
}

func (mock *insightServiceMock) MatchCompetitors(ctx context.Context, companyID uuid.UUID) ([]insight.CompetitorMatch, error) {
	if mock.MatchCompetitorsFunc == nil {
		panic("insightServiceMock.MatchCompetitorsFunc: method is nil but insightService.MatchCompetitors was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockMatchCompetitors.Lock()
	mock.calls.MatchCompetitors = append(mock.calls.MatchCompetitors, callInfo)
	mock.lockMatchCompetitors.Unlock()
	return mock.MatchCompetitorsFunc(ctx, companyID)
}

func (mock *insightServiceMock) MatchCompetitorsCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockMatchCompetitors.RLock()
	calls = mock.calls.MatchCompetitors
	mock.lockMatchCompetitors.RUnlock()
	return calls
}

var _ reviewService = &reviewServiceMock{}

type reviewServiceMock struct {
	SubmitFunc               func(ctx context.Context, input review.SubmitInput) (*domain.ReviewedJob, error)
	PendingFunc              func(ctx context.Context) ([]domain.ReviewedJob, error)
	ReloadFunc               func(ctx context.Context) ([]domain.ReviewedJob, error)
	OverrideFunc             func(ctx context.Context, input review.OverrideInput) ([]domain.ReviewedJob, error)
	NotificationsFunc        func(ctx context.Context) ([]domain.Notification, error)
	DismissNotificationsFunc func(ctx context.Context) error

	calls struct {
		Submit []struct {
			Ctx   context.Context
			Input review.SubmitInput
		}
		Pending []struct {
			Ctx context.Context
		}
		Reload []struct {
			Ctx context.Context
		}
		Override []struct {
			Ctx   context.Context
			Input review.OverrideInput
		}
		Notifications []struct {
			Ctx context.Context
		}
		DismissNotifications []struct {
			Ctx context.Context
		}
	}
	lockSubmit               sync.RWMutex
	lockPending              sync.RWMutex
	lockReload               sync.RWMutex
	lockOverride             sync.RWMutex
	lockNotifications        sync.RWMutex
	lockDismissNotifications sync.RWMutex
}

func (mock *reviewServiceMock) Submit(ctx context.Context, input review.SubmitInput) (*domain.ReviewedJob, error) {
	if mock.SubmitFunc == nil {
		panic("reviewServiceMock.SubmitFunc: method is nil but reviewService.Submit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.SubmitInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmit.Lock()
	mock.calls.Submit = append(mock.calls.Submit, callInfo)
	mock.lockSubmit.Unlock()
	return mock.SubmitFunc(ctx, input)
}

func (mock *reviewServiceMock) SubmitCalls() []struct {
	Ctx   context.Context
	Input review.SubmitInput
} {
	var calls []struct {
		Ctx   context.Context
		Input review.SubmitInput
	}
	mock.lockSubmit.RLock()
	calls = mock.calls.Submit
	mock.lockSubmit.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Pending(ctx context.Context) ([]domain.ReviewedJob, error) {
	if mock.PendingFunc == nil {
		panic("reviewServiceMock.PendingFunc: method is nil but reviewService.Pending was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockPending.Lock()
	mock.calls.Pending = append(mock.calls.Pending, callInfo)
	mock.lockPending.Unlock()
	return mock.PendingFunc(ctx)
}

func (mock *reviewServiceMock) PendingCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockPending.RLock()
	calls = mock.calls.Pending
	mock.lockPending.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Reload(ctx context.Context) ([]domain.ReviewedJob, error) {
	if mock.ReloadFunc == nil {
		panic("reviewServiceMock.ReloadFunc: method is nil but reviewService.Reload was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockReload.Lock()
	mock.calls.Reload = append(mock.calls.Reload, callInfo)
	mock.lockReload.Unlock()
	return mock.ReloadFunc(ctx)
}

func (mock *reviewServiceMock) ReloadCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockReload.RLock()
	calls = mock.calls.Reload
	mock.lockReload.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Override(ctx context.Context, input review.OverrideInput) ([]domain.ReviewedJob, error) {
	if mock.OverrideFunc == nil {
		panic("reviewServiceMock.OverrideFunc: method is nil but reviewService.Override was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input review.OverrideInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockOverride.Lock()
	mock.calls.Override = append(mock.calls.Override, callInfo)
	mock.lockOverride.Unlock()
	return mock.OverrideFunc(ctx, input)
}

func (mock *reviewServiceMock) OverrideCalls() []struct {
	Ctx   context.Context
	Input review.OverrideInput
} {
	var calls []struct {
		Ctx   context.Context
		Input review.OverrideInput
	}
	mock.lockOverride.RLock()
	calls = mock.calls.Override
	mock.lockOverride.RUnlock()
	return calls
}

func (mock *reviewServiceMock) Notifications(ctx context.Context) ([]domain.Notification, error) {
	if mock.NotificationsFunc == nil {
		panic("reviewServiceMock.NotificationsFunc: method is nil but reviewService.Notifications was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockNotifications.Lock()
	mock.calls.Notifications = append(mock.calls.Notifications, callInfo)
	mock.lockNotifications.Unlock()
	return mock.NotificationsFunc(ctx)
}

func (mock *reviewServiceMock) NotificationsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockNotifications.RLock()
	calls = mock.calls.Notifications
	mock.lockNotifications.RUnlock()
	return calls
}

func (mock *reviewServiceMock) DismissNotifications(ctx context.Context) error {
	if mock.DismissNotificationsFunc == nil {
		panic("reviewServiceMock.DismissNotificationsFunc: method is nil but reviewService.DismissNotifications was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDismissNotifications.Lock()
	mock.calls.DismissNotifications = append(mock.calls.DismissNotifications, callInfo)
	mock.lockDismissNotifications.Unlock()
	return mock.DismissNotificationsFunc(ctx)
}

func (mock *reviewServiceMock) DismissNotificationsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockDismissNotifications.RLock()
	calls = mock.calls.DismissNotifications
	mock.lockDismissNotifications.RUnlock()
	return calls
}

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	StrategicMessagesFunc func(ctx context.Context, req generation.StrategicMessageRequest) ([]domain.Artifact, error)
	BrandVoiceFunc        func(ctx context.Context, req generation.BrandVoiceRequest) (*domain.Artifact, error)
	ResearchCompanyFunc   func(ctx context.Context, req generation.CompanyResearchRequest) (map[string]domain.InfoField, error)

	calls struct {
		StrategicMessages []struct {
			Ctx context.Context
			Req generation.StrategicMessageRequest
		}
		BrandVoice []struct {
			Ctx context.Context
			Req generation.BrandVoiceRequest
		}
		ResearchCompany []struct {
			Ctx context.Context
			Req generation.CompanyResearchRequest
		}
	}
	lockStrategicMessages sync.RWMutex
	lockBrandVoice        sync.RWMutex
	lockResearchCompany   sync.RWMutex
}

func (mock *generationServiceMock) StrategicMessages(ctx context.Context, req generation.StrategicMessageRequest) ([]domain.Artifact, error) {
	if mock.StrategicMessagesFunc == nil {
		panic("generationServiceMock.StrategicMessagesFunc: method is nil but generationService.StrategicMessages was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req generation.StrategicMessageRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockStrategicMessages.Lock()
	mock.calls.StrategicMessages = append(mock.calls.StrategicMessages, callInfo)
	mock.lockStrategicMessages.Unlock()
	return mock.StrategicMessagesFunc(ctx, req)
}

func (mock *generationServiceMock) StrategicMessagesCalls() []struct {
	Ctx context.Context
	Req generation.StrategicMessageRequest
} {
	var calls []struct {
		Ctx context.Context
		Req generation.StrategicMessageRequest
	}
	mock.lockStrategicMessages.RLock()
	calls = mock.calls.StrategicMessages
	mock.lockStrategicMessages.RUnlock()
	return calls
}

func (mock *generationServiceMock) BrandVoice(ctx context.Context, req generation.BrandVoiceRequest) (*domain.Artifact, error) {
	if mock.BrandVoiceFunc == nil {
		panic("generationServiceMock.BrandVoiceFunc: method is nil but generationService.BrandVoice was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req generation.BrandVoiceRequest
	}{
		Ctx: ctx,
		Req: req,
	}
	mock.lockBrandVoice.Lock()
	mock.calls.BrandVoice = append(mock.calls.BrandVoice, callInfo)
	mock.lockBrandVoice.Unlock()
	return mock.BrandVoiceFunc(ctx, req)
}

func (mock *generationServiceMock) BrandVoiceCalls() []struct {
	Ctx context.Context
	Req generation.BrandVoiceRequest
} {
	var calls []struct {
		Ctx context.Context
		Req generation.BrandVoiceRequest
	}
	mock.lockBrandVoice.RLock()
	calls = mock.calls.BrandVoice
	mock.lockBrandVoice.RUnlock()
	return calls
}

func (mock *generationServiceMock) ResearchCompany(ctx context.Context, req generation.CompanyResearchRequest) (map[string]domain.InfoField, error) {
	if mock.ResearchCompanyFunc == nil {
		panic("generationServiceMock.ResearchCompanyFunc: method is nil but generationService.ResearchCompany was just called")
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

func (mock *generationServiceMock) ResearchCompanyCalls() []struct {
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

var _ workspaceService = &workspaceServiceMock{}

type workspaceServiceMock struct {
	SessionsFunc           func(ctx context.Context) ([]workspace.SessionInfo, error)
	OpenCompanyFunc        func(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	CompanySessionFunc     func(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	BeginCompanyEditFunc   func(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	EditCompanyFunc        func(ctx context.Context, companyID uuid.UUID, e workspace.CompanyEdit) (workspace.CompanySnapshot, error)
	EditCompanyInfoFunc    func(ctx context.Context, companyID uuid.UUID, key string, text string) (workspace.CompanySnapshot, error)
	ResearchCompanyFunc    func(ctx context.Context, companyID uuid.UUID, fields []string) (workspace.CompanySnapshot, error)
	SaveCompanyFunc        func(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	CancelCompanyFunc      func(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	RefreshCompanyFunc     func(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	CloseCompanyFunc       func(ctx context.Context, companyID uuid.UUID) error
	OpenInterviewFunc      func(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	InterviewSessionFunc   func(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	BeginInterviewEditFunc func(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	EditInterviewFunc      func(ctx context.Context, interviewID uuid.UUID, e workspace.InterviewEdit) (workspace.InterviewSnapshot, error)
	ReorderDeckFunc        func(ctx context.Context, interviewID uuid.UUID, draggedID uuid.UUID, targetID uuid.UUID) (workspace.InterviewSnapshot, error)
	AddStoryFunc           func(ctx context.Context, interviewID uuid.UUID, storyID uuid.UUID) (workspace.InterviewSnapshot, error)
	RemoveStoryFunc        func(ctx context.Context, interviewID uuid.UUID, storyID uuid.UUID) (workspace.InterviewSnapshot, error)
	AddPersonaFunc         func(ctx context.Context, interviewID uuid.UUID, persona string) (workspace.InterviewSnapshot, error)
	RemovePersonaFunc      func(ctx context.Context, interviewID uuid.UUID, persona string) (workspace.InterviewSnapshot, error)
	SetNoteFunc            func(ctx context.Context, interviewID uuid.UUID, storyID uuid.UUID, persona string, field string, value string) (workspace.InterviewSnapshot, error)
	SaveInterviewFunc      func(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	CancelInterviewFunc    func(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	RefreshInterviewFunc   func(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	CloseInterviewFunc     func(ctx context.Context, interviewID uuid.UUID) error

	calls struct {
		Sessions []struct {
			Ctx context.Context
		}
		OpenCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		CompanySession []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		BeginCompanyEdit []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		EditCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			E         workspace.CompanyEdit
		}
		EditCompanyInfo []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			Key       string
			Text      string
		}
		ResearchCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
			Fields    []string
		}
		SaveCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		CancelCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		RefreshCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		CloseCompany []struct {
			Ctx       context.Context
			CompanyID uuid.UUID
		}
		OpenInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		InterviewSession []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		BeginInterviewEdit []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		EditInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			E           workspace.InterviewEdit
		}
		ReorderDeck []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			DraggedID   uuid.UUID
			TargetID    uuid.UUID
		}
		AddStory []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			StoryID     uuid.UUID
		}
		RemoveStory []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			StoryID     uuid.UUID
		}
		AddPersona []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			Persona     string
		}
		RemovePersona []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			Persona     string
		}
		SetNote []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
			StoryID     uuid.UUID
			Persona     string
			Field       string
			Value       string
		}
		SaveInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		CancelInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		RefreshInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
		CloseInterview []struct {
			Ctx         context.Context
			InterviewID uuid.UUID
		}
	}
	lockSessions           sync.RWMutex
	lockOpenCompany        sync.RWMutex
	lockCompanySession     sync.RWMutex
	lockBeginCompanyEdit   sync.RWMutex
	lockEditCompany        sync.RWMutex
	lockEditCompanyInfo    sync.RWMutex
	lockResearchCompany    sync.RWMutex
	lockSaveCompany        sync.RWMutex
	lockCancelCompany      sync.RWMutex
	lockRefreshCompany     sync.RWMutex
	lockCloseCompany       sync.RWMutex
	lockOpenInterview      sync.RWMutex
	lockInterviewSession   sync.RWMutex
	lockBeginInterviewEdit sync.RWMutex
	lockEditInterview      sync.RWMutex
	lockReorderDeck        sync.RWMutex
	lockAddStory           sync.RWMutex
	lockRemoveStory        sync.RWMutex
	lockAddPersona         sync.RWMutex
	lockRemovePersona      sync.RWMutex
	lockSetNote            sync.RWMutex
	lockSaveInterview      sync.RWMutex
	lockCancelInterview    sync.RWMutex
	lockRefreshInterview   sync.RWMutex
	lockCloseInterview     sync.RWMutex
}

func (mock *workspaceServiceMock) Sessions(ctx context.Context) ([]workspace.SessionInfo, error) {
	if mock.SessionsFunc == nil {
		panic("workspaceServiceMock.SessionsFunc: method is nil but workspaceService.Sessions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSessions.Lock()
	mock.calls.Sessions = append(mock.calls.Sessions, callInfo)
	mock.lockSessions.Unlock()
	return mock.SessionsFunc(ctx)
}

func (mock *workspaceServiceMock) SessionsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockSessions.RLock()
	calls = mock.calls.Sessions
	mock.lockSessions.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) OpenCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error) {
	if mock.OpenCompanyFunc == nil {
		panic("workspaceServiceMock.OpenCompanyFunc: method is nil but workspaceService.OpenCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockOpenCompany.Lock()
	mock.calls.OpenCompany = append(mock.calls.OpenCompany, callInfo)
	mock.lockOpenCompany.Unlock()
	return mock.OpenCompanyFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) OpenCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockOpenCompany.RLock()
	calls = mock.calls.OpenCompany
	mock.lockOpenCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) CompanySession(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error) {
	if mock.CompanySessionFunc == nil {
		panic("workspaceServiceMock.CompanySessionFunc: method is nil but workspaceService.CompanySession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockCompanySession.Lock()
	mock.calls.CompanySession = append(mock.calls.CompanySession, callInfo)
	mock.lockCompanySession.Unlock()
	return mock.CompanySessionFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) CompanySessionCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockCompanySession.RLock()
	calls = mock.calls.CompanySession
	mock.lockCompanySession.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) BeginCompanyEdit(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error) {
	if mock.BeginCompanyEditFunc == nil {
		panic("workspaceServiceMock.BeginCompanyEditFunc: method is nil but workspaceService.BeginCompanyEdit was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockBeginCompanyEdit.Lock()
	mock.calls.BeginCompanyEdit = append(mock.calls.BeginCompanyEdit, callInfo)
	mock.lockBeginCompanyEdit.Unlock()
	return mock.BeginCompanyEditFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) BeginCompanyEditCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockBeginCompanyEdit.RLock()
	calls = mock.calls.BeginCompanyEdit
	mock.lockBeginCompanyEdit.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) EditCompany(ctx context.Context, companyID uuid.UUID, e workspace.CompanyEdit) (workspace.CompanySnapshot, error) {
	if mock.EditCompanyFunc == nil {
		panic("workspaceServiceMock.EditCompanyFunc: method is nil but workspaceService.EditCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		E         workspace.CompanyEdit
	}{
		Ctx:       ctx,
		CompanyID: companyID,
		E:         e,
	}
	mock.lockEditCompany.Lock()
	mock.calls.EditCompany = append(mock.calls.EditCompany, callInfo)
	mock.lockEditCompany.Unlock()
	return mock.EditCompanyFunc(ctx, companyID, e)
}

func (mock *workspaceServiceMock) EditCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	E         workspace.CompanyEdit
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		E         workspace.CompanyEdit
	}
	mock.lockEditCompany.RLock()
	calls = mock.calls.EditCompany
	mock.lockEditCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) EditCompanyInfo(ctx context.Context, companyID uuid.UUID, key string, text string) (workspace.CompanySnapshot, error) {
	if mock.EditCompanyInfoFunc == nil {
		panic("workspaceServiceMock.EditCompanyInfoFunc: method is nil but workspaceService.EditCompanyInfo was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		Key       string
		Text      string
	}{
		Ctx:       ctx,
		CompanyID: companyID,
		Key:       key,
		Text:      text,
	}
	mock.lockEditCompanyInfo.Lock()
	mock.calls.EditCompanyInfo = append(mock.calls.EditCompanyInfo, callInfo)
	mock.lockEditCompanyInfo.Unlock()
	return mock.EditCompanyInfoFunc(ctx, companyID, key, text)
}

func (mock *workspaceServiceMock) EditCompanyInfoCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	Key       string
	Text      string
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		Key       string
		Text      string
	}
	mock.lockEditCompanyInfo.RLock()
	calls = mock.calls.EditCompanyInfo
	mock.lockEditCompanyInfo.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) ResearchCompany(ctx context.Context, companyID uuid.UUID, fields []string) (workspace.CompanySnapshot, error) {
	if mock.ResearchCompanyFunc == nil {
		panic("workspaceServiceMock.ResearchCompanyFunc: method is nil but workspaceService.ResearchCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		Fields    []string
	}{
		Ctx:       ctx,
		CompanyID: companyID,
		Fields:    fields,
	}
	mock.lockResearchCompany.Lock()
	mock.calls.ResearchCompany = append(mock.calls.ResearchCompany, callInfo)
	mock.lockResearchCompany.Unlock()
	return mock.ResearchCompanyFunc(ctx, companyID, fields)
}

func (mock *workspaceServiceMock) ResearchCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
	Fields    []string
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
		Fields    []string
	}
	mock.lockResearchCompany.RLock()
	calls = mock.calls.ResearchCompany
	mock.lockResearchCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) SaveCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error) {
	if mock.SaveCompanyFunc == nil {
		panic("workspaceServiceMock.SaveCompanyFunc: method is nil but workspaceService.SaveCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockSaveCompany.Lock()
	mock.calls.SaveCompany = append(mock.calls.SaveCompany, callInfo)
	mock.lockSaveCompany.Unlock()
	return mock.SaveCompanyFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) SaveCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockSaveCompany.RLock()
	calls = mock.calls.SaveCompany
	mock.lockSaveCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) CancelCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error) {
	if mock.CancelCompanyFunc == nil {
		panic("workspaceServiceMock.CancelCompanyFunc: method is nil but workspaceService.CancelCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockCancelCompany.Lock()
	mock.calls.CancelCompany = append(mock.calls.CancelCompany, callInfo)
	mock.lockCancelCompany.Unlock()
	return mock.CancelCompanyFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) CancelCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockCancelCompany.RLock()
	calls = mock.calls.CancelCompany
	mock.lockCancelCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) RefreshCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error) {
	if mock.RefreshCompanyFunc == nil {
		panic("workspaceServiceMock.RefreshCompanyFunc: method is nil but workspaceService.RefreshCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockRefreshCompany.Lock()
	mock.calls.RefreshCompany = append(mock.calls.RefreshCompany, callInfo)
	mock.lockRefreshCompany.Unlock()
	return mock.RefreshCompanyFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) RefreshCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockRefreshCompany.RLock()
	calls = mock.calls.RefreshCompany
	mock.lockRefreshCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) CloseCompany(ctx context.Context, companyID uuid.UUID) error {
	if mock.CloseCompanyFunc == nil {
		panic("workspaceServiceMock.CloseCompanyFunc: method is nil but workspaceService.CloseCompany was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}{
		Ctx:       ctx,
		CompanyID: companyID,
	}
	mock.lockCloseCompany.Lock()
	mock.calls.CloseCompany = append(mock.calls.CloseCompany, callInfo)
	mock.lockCloseCompany.Unlock()
	return mock.CloseCompanyFunc(ctx, companyID)
}

func (mock *workspaceServiceMock) CloseCompanyCalls() []struct {
	Ctx       context.Context
	CompanyID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		CompanyID uuid.UUID
	}
	mock.lockCloseCompany.RLock()
	calls = mock.calls.CloseCompany
	mock.lockCloseCompany.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) OpenInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.OpenInterviewFunc == nil {
		panic("workspaceServiceMock.OpenInterviewFunc: method is nil but workspaceService.OpenInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockOpenInterview.Lock()
	mock.calls.OpenInterview = append(mock.calls.OpenInterview, callInfo)
	mock.lockOpenInterview.Unlock()
	return mock.OpenInterviewFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) OpenInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockOpenInterview.RLock()
	calls = mock.calls.OpenInterview
	mock.lockOpenInterview.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) InterviewSession(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.InterviewSessionFunc == nil {
		panic("workspaceServiceMock.InterviewSessionFunc: method is nil but workspaceService.InterviewSession was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockInterviewSession.Lock()
	mock.calls.InterviewSession = append(mock.calls.InterviewSession, callInfo)
	mock.lockInterviewSession.Unlock()
	return mock.InterviewSessionFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) InterviewSessionCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockInterviewSession.RLock()
	calls = mock.calls.InterviewSession
	mock.lockInterviewSession.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) BeginInterviewEdit(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.BeginInterviewEditFunc == nil {
		panic("workspaceServiceMock.BeginInterviewEditFunc: method is nil but workspaceService.BeginInterviewEdit was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockBeginInterviewEdit.Lock()
	mock.calls.BeginInterviewEdit = append(mock.calls.BeginInterviewEdit, callInfo)
	mock.lockBeginInterviewEdit.Unlock()
	return mock.BeginInterviewEditFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) BeginInterviewEditCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockBeginInterviewEdit.RLock()
	calls = mock.calls.BeginInterviewEdit
	mock.lockBeginInterviewEdit.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) EditInterview(ctx context.Context, interviewID uuid.UUID, e workspace.InterviewEdit) (workspace.InterviewSnapshot, error) {
	if mock.EditInterviewFunc == nil {
		panic("workspaceServiceMock.EditInterviewFunc: method is nil but workspaceService.EditInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		E           workspace.InterviewEdit
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		E:           e,
	}
	mock.lockEditInterview.Lock()
	mock.calls.EditInterview = append(mock.calls.EditInterview, callInfo)
	mock.lockEditInterview.Unlock()
	return mock.EditInterviewFunc(ctx, interviewID, e)
}

func (mock *workspaceServiceMock) EditInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	E           workspace.InterviewEdit
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		E           workspace.InterviewEdit
	}
	mock.lockEditInterview.RLock()
	calls = mock.calls.EditInterview
	mock.lockEditInterview.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) ReorderDeck(ctx context.Context, interviewID uuid.UUID, draggedID uuid.UUID, targetID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.ReorderDeckFunc == nil {
		panic("workspaceServiceMock.ReorderDeckFunc: method is nil but workspaceService.ReorderDeck was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		DraggedID   uuid.UUID
		TargetID    uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		DraggedID:   draggedID,
		TargetID:    targetID,
	}
	mock.lockReorderDeck.Lock()
	mock.calls.ReorderDeck = append(mock.calls.ReorderDeck, callInfo)
	mock.lockReorderDeck.Unlock()
	return mock.ReorderDeckFunc(ctx, interviewID, draggedID, targetID)
}

func (mock *workspaceServiceMock) ReorderDeckCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	DraggedID   uuid.UUID
	TargetID    uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		DraggedID   uuid.UUID
		TargetID    uuid.UUID
	}
	mock.lockReorderDeck.RLock()
	calls = mock.calls.ReorderDeck
	mock.lockReorderDeck.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) AddStory(ctx context.Context, interviewID uuid.UUID, storyID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.AddStoryFunc == nil {
		panic("workspaceServiceMock.AddStoryFunc: method is nil but workspaceService.AddStory was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		StoryID     uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		StoryID:     storyID,
	}
	mock.lockAddStory.Lock()
	mock.calls.AddStory = append(mock.calls.AddStory, callInfo)
	mock.lockAddStory.Unlock()
	return mock.AddStoryFunc(ctx, interviewID, storyID)
}

func (mock *workspaceServiceMock) AddStoryCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	StoryID     uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		StoryID     uuid.UUID
	}
	mock.lockAddStory.RLock()
	calls = mock.calls.AddStory
	mock.lockAddStory.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) RemoveStory(ctx context.Context, interviewID uuid.UUID, storyID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.RemoveStoryFunc == nil {
		panic("workspaceServiceMock.RemoveStoryFunc: method is nil but workspaceService.RemoveStory was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		StoryID     uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		StoryID:     storyID,
	}
	mock.lockRemoveStory.Lock()
	mock.calls.RemoveStory = append(mock.calls.RemoveStory, callInfo)
	mock.lockRemoveStory.Unlock()
	return mock.RemoveStoryFunc(ctx, interviewID, storyID)
}

func (mock *workspaceServiceMock) RemoveStoryCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	StoryID     uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		StoryID     uuid.UUID
	}
	mock.lockRemoveStory.RLock()
	calls = mock.calls.RemoveStory
	mock.lockRemoveStory.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) AddPersona(ctx context.Context, interviewID uuid.UUID, persona string) (workspace.InterviewSnapshot, error) {
	if mock.AddPersonaFunc == nil {
		panic("workspaceServiceMock.AddPersonaFunc: method is nil but workspaceService.AddPersona was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		Persona     string
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		Persona:     persona,
	}
	mock.lockAddPersona.Lock()
	mock.calls.AddPersona = append(mock.calls.AddPersona, callInfo)
	mock.lockAddPersona.Unlock()
	return mock.AddPersonaFunc(ctx, interviewID, persona)
}

func (mock *workspaceServiceMock) AddPersonaCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	Persona     string
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		Persona     string
	}
	mock.lockAddPersona.RLock()
	calls = mock.calls.AddPersona
	mock.lockAddPersona.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) RemovePersona(ctx context.Context, interviewID uuid.UUID, persona string) (workspace.InterviewSnapshot, error) {
	if mock.RemovePersonaFunc == nil {
		panic("workspaceServiceMock.RemovePersonaFunc: method is nil but workspaceService.RemovePersona was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		Persona     string
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		Persona:     persona,
	}
	mock.lockRemovePersona.Lock()
	mock.calls.RemovePersona = append(mock.calls.RemovePersona, callInfo)
	mock.lockRemovePersona.Unlock()
	return mock.RemovePersonaFunc(ctx, interviewID, persona)
}

func (mock *workspaceServiceMock) RemovePersonaCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	Persona     string
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		Persona     string
	}
	mock.lockRemovePersona.RLock()
	calls = mock.calls.RemovePersona
	mock.lockRemovePersona.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) SetNote(ctx context.Context, interviewID uuid.UUID, storyID uuid.UUID, persona string, field string, value string) (workspace.InterviewSnapshot, error) {
	if mock.SetNoteFunc == nil {
		panic("workspaceServiceMock.SetNoteFunc: method is nil but workspaceService.SetNote was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		StoryID     uuid.UUID
		Persona     string
		Field       string
		Value       string
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
		StoryID:     storyID,
		Persona:     persona,
		Field:       field,
		Value:       value,
	}
	mock.lockSetNote.Lock()
	mock.calls.SetNote = append(mock.calls.SetNote, callInfo)
	mock.lockSetNote.Unlock()
	return mock.SetNoteFunc(ctx, interviewID, storyID, persona, field, value)
}

func (mock *workspaceServiceMock) SetNoteCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
	StoryID     uuid.UUID
	Persona     string
	Field       string
	Value       string
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
		StoryID     uuid.UUID
		Persona     string
		Field       string
		Value       string
	}
	mock.lockSetNote.RLock()
	calls = mock.calls.SetNote
	mock.lockSetNote.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) SaveInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.SaveInterviewFunc == nil {
		panic("workspaceServiceMock.SaveInterviewFunc: method is nil but workspaceService.SaveInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockSaveInterview.Lock()
	mock.calls.SaveInterview = append(mock.calls.SaveInterview, callInfo)
	mock.lockSaveInterview.Unlock()
	return mock.SaveInterviewFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) SaveInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockSaveInterview.RLock()
	calls = mock.calls.SaveInterview
	mock.lockSaveInterview.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) CancelInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.CancelInterviewFunc == nil {
		panic("workspaceServiceMock.CancelInterviewFunc: method is nil but workspaceService.CancelInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockCancelInterview.Lock()
	mock.calls.CancelInterview = append(mock.calls.CancelInterview, callInfo)
	mock.lockCancelInterview.Unlock()
	return mock.CancelInterviewFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) CancelInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockCancelInterview.RLock()
	calls = mock.calls.CancelInterview
	mock.lockCancelInterview.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) RefreshInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error) {
	if mock.RefreshInterviewFunc == nil {
		panic("workspaceServiceMock.RefreshInterviewFunc: method is nil but workspaceService.RefreshInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockRefreshInterview.Lock()
	mock.calls.RefreshInterview = append(mock.calls.RefreshInterview, callInfo)
	mock.lockRefreshInterview.Unlock()
	return mock.RefreshInterviewFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) RefreshInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockRefreshInterview.RLock()
	calls = mock.calls.RefreshInterview
	mock.lockRefreshInterview.RUnlock()
	return calls
}

func (mock *workspaceServiceMock) CloseInterview(ctx context.Context, interviewID uuid.UUID) error {
	if mock.CloseInterviewFunc == nil {
		panic("workspaceServiceMock.CloseInterviewFunc: method is nil but workspaceService.CloseInterview was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}{
		Ctx:         ctx,
		InterviewID: interviewID,
	}
	mock.lockCloseInterview.Lock()
	mock.calls.CloseInterview = append(mock.calls.CloseInterview, callInfo)
	mock.lockCloseInterview.Unlock()
	return mock.CloseInterviewFunc(ctx, interviewID)
}

func (mock *workspaceServiceMock) CloseInterviewCalls() []struct {
	Ctx         context.Context
	InterviewID uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		InterviewID uuid.UUID
	}
	mock.lockCloseInterview.RLock()
	calls = mock.calls.CloseInterview
	mock.lockCloseInterview.RUnlock()
	return calls
}
