package models

import "github.com/pkg/errors"

type SubmissionStatus string

const (
	StatusDraft               SubmissionStatus = "DRAFT"
	StatusPendingApproval     SubmissionStatus = "PENDING_APPROVAL"
	StatusPendingCEO          SubmissionStatus = "PENDING_CEO"
	StatusPendingLegalGM      SubmissionStatus = "PENDING_LEGAL_GM"
	StatusPendingLegalOfficer SubmissionStatus = "PENDING_LEGAL_OFFICER"
	StatusPendingCourtOfficer SubmissionStatus = "PENDING_COURT_OFFICER"
	StatusPendingLegalGMFinal SubmissionStatus = "PENDING_LEGAL_GM_FINAL"
	StatusCompleted           SubmissionStatus = "COMPLETED"
	StatusSentBack            SubmissionStatus = "SENT_BACK"
	StatusCancelled           SubmissionStatus = "CANCELLED"
	StatusResubmitted         SubmissionStatus = "RESUBMITTED"
)

var submissionStatusHumanName = map[SubmissionStatus]string{
	StatusDraft:               "Draft",
	StatusPendingApproval:     "Pending approval",
	StatusPendingCEO:          "Pending CEO approval",
	StatusPendingLegalGM:      "Pending Legal GM review",
	StatusPendingLegalOfficer: "With Legal Officer",
	StatusPendingCourtOfficer: "With Court Officer",
	StatusPendingLegalGMFinal: "Pending Legal GM final approval",
	StatusCompleted:           "Completed",
	StatusSentBack:            "Sent back",
	StatusCancelled:           "Cancelled",
	StatusResubmitted:         "Resubmitted",
}

func (s SubmissionStatus) ToHuman() string {
	if human, exist := submissionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s SubmissionStatus) Validate() error {
	if _, ok := submissionStatusHumanName[s]; !ok {
		return errors.Errorf("unknown submission status: %v", s)
	}
	return nil
}

// IsClosed reports statuses no action can leave.
func (s SubmissionStatus) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusResubmitted
}

// IsInFlight reports statuses where the request is still travelling through the approval chain.
func (s SubmissionStatus) IsInFlight() bool {
	switch s {
	case StatusDraft,
		StatusPendingApproval,
		StatusPendingCEO,
		StatusPendingLegalGM,
		StatusPendingLegalOfficer,
		StatusPendingCourtOfficer,
		StatusPendingLegalGMFinal:
		return true
	}
	return false
}

// LOStage refines PENDING_LEGAL_OFFICER and the statuses around it
type LOStage string

const (
	StageNone                LOStage = ""
	StagePendingGM           LOStage = "PENDING_GM"
	StageActive              LOStage = "ACTIVE"
	StageAssignCourtOfficer  LOStage = "ASSIGN_COURT_OFFICER"
	StagePendingCourtOfficer LOStage = "PENDING_COURT_OFFICER"
	StageReviewForGM         LOStage = "REVIEW_FOR_GM"
	StageReassigned          LOStage = "REASSIGNED"
	StagePostGMApproval      LOStage = "POST_GM_APPROVAL"
)

// IsOfficerActionable reports stages in which the legal officer reviews documents.
func (s LOStage) IsOfficerActionable() bool {
	return s == StageActive || s == StageAssignCourtOfficer || s == StageReviewForGM
}
