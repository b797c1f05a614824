package workflow

import (
	"testing"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/stretchr/testify/require"
)

var (
	initiator = Actor{Role: models.RoleInitiator, Name: "Ina Perera", Email: "ina@corp.lk"}
	bum       = Actor{Role: models.RoleBUM, Name: "Bandara", Email: "bum@corp.lk"}
	fbp       = Actor{Role: models.RoleFBP, Name: "Fernando", Email: "fbp@corp.lk"}
	cluster   = Actor{Role: models.RoleClusterHead, Name: "Silva", Email: "cluster@corp.lk"}
	ceo       = Actor{Role: models.RoleCEO, Name: "Jayasuriya", Email: "ceo@corp.lk"}
	legalGM   = Actor{Role: models.RoleLegalGM, Name: "Gunawardena", Email: "gm@corp.lk"}
	officer   = Actor{Role: models.RoleLegalOfficer, Name: "Leo Dias", Email: "leo@corp.lk"}
	court     = Actor{Role: models.RoleCourtOfficer, Name: "Kumara", Email: "court@corp.lk"}
	special   = Actor{Role: models.RoleSpecialApprover, Name: "Nimal", Email: "finance@corp.lk"}
)

func assigneeOf(a Actor) *Assignee {
	return &Assignee{ID: a.Email, Name: a.Name, Email: a.Email, Department: "Finance"}
}

// scenario drives a submission through the engine with a clock that moves a
// minute per action.
type scenario struct {
	t   *testing.T
	now time.Time
	sub dbmodels.Submission
}

var startTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newDraft(t *testing.T, form models.FormID) *scenario {
	approvers := []ApproverInput{
		{Role: models.RoleBUM, Name: bum.Name, Email: bum.Email},
		{Role: models.RoleFBP, Name: fbp.Name, Email: fbp.Email},
		{Role: models.RoleClusterHead, Name: cluster.Name, Email: cluster.Email},
		{Role: models.RoleLegalGM, Name: legalGM.Name, Email: legalGM.Email},
	}
	if form == models.FormLeaseAgreement {
		approvers = append(approvers, ApproverInput{Role: models.RoleCEO, Name: ceo.Name, Email: ceo.Email})
	}
	sub, err := NewSubmission(Draft{
		FormID:         form,
		Title:          "Supply agreement",
		CompanyCode:    "DIMO",
		Value:          "1500000",
		Content:        dbmodels.Content(`{"scopeOfAgreement":"supply of spare parts"}`),
		InitiatorName:  initiator.Name,
		InitiatorEmail: initiator.Email,
		Parties:        []PartyInput{{Type: "Company", Name: "Acme Pvt Ltd"}},
		Approvers:      approvers,
		Documents: []RequiredDocument{
			{Label: "Board resolution", Type: "Common", Mandatory: true},
			{Label: "Form 20", Type: "Company", Mandatory: false},
		},
	}, 1, startTime)
	require.NoError(t, err)
	return &scenario{t: t, now: startTime, sub: sub}
}

// newSubmitted returns a submission waiting for first-level approvals.
func newSubmitted(t *testing.T, form models.FormID) *scenario {
	s := newDraft(t, form)
	s.do(Request{Actor: initiator, Action: models.ActionAttachFile, DocumentID: s.sub.Documents[0].ID, FileURL: "https://files/board.pdf"})
	s.do(Request{Actor: initiator, Action: models.ActionSubmit})
	require.Equal(t, models.StatusPendingApproval, s.sub.Status)
	return s
}

// newWithOfficer returns a submission the Legal GM has handed to the legal officer.
func newWithOfficer(t *testing.T, form models.FormID) *scenario {
	s := newSubmitted(t, form)
	for _, a := range []Actor{bum, fbp, cluster} {
		s.do(Request{Actor: a, Action: models.ActionApprove})
	}
	if form == models.FormLeaseAgreement {
		s.do(Request{Actor: ceo, Action: models.ActionApprove})
	}
	s.do(Request{Actor: legalGM, Action: models.ActionApprove, Assignee: assigneeOf(officer)})
	require.Equal(t, models.StatusPendingLegalOfficer, s.sub.Status)
	return s
}

// newAtFinal returns a form 1 submission waiting for the Legal GM's final approval.
func newAtFinal(t *testing.T) *scenario {
	s := newWithOfficer(t, models.FormContractReview)
	s.do(Request{Actor: officer, Action: models.ActionSubmitToLegalGM})
	require.Equal(t, models.StatusPendingLegalGMFinal, s.sub.Status)
	return s
}

func (s *scenario) try(req Request) (Result, error) {
	s.now = s.now.Add(time.Minute)
	return Apply(s.sub, req, s.now)
}

func (s *scenario) do(req Request) Result {
	s.t.Helper()
	res, err := s.try(req)
	require.NoError(s.t, err)
	s.sub = res.Submission
	return res
}

func (s *scenario) fails(req Request, kind ErrorKind) error {
	s.t.Helper()
	before := cloneSubmission(s.sub)
	_, err := s.try(req)
	require.Error(s.t, err)
	require.Equal(s.t, kind, KindOf(err), err.Error())
	require.Equal(s.t, before, s.sub)
	return err
}

func (s *scenario) approval(role models.WorkflowRole, step models.ApprovalStep) dbmodels.Approval {
	s.t.Helper()
	rec := s.sub.FindApproval(role, step)
	require.NotNil(s.t, rec)
	return *rec
}
