package models

import "github.com/pkg/errors"

type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "PENDING"
	ApprovalApproved  ApprovalStatus = "APPROVED"
	ApprovalSentBack  ApprovalStatus = "SENT_BACK"
	ApprovalCancelled ApprovalStatus = "CANCELLED"
)

func (s ApprovalStatus) IsResolved() bool {
	return s != ApprovalPending && s != ""
}

// ApprovalStep names the hop of the chain an approval record belongs to.
// Legal GM owns two records (initial review and final approval), so a role
// alone does not identify a record.
type ApprovalStep string

const (
	StepFirstLevel         ApprovalStep = "FIRST_LEVEL"
	StepCEOReview          ApprovalStep = "CEO_REVIEW"
	StepLegalGMReview      ApprovalStep = "LEGAL_GM_REVIEW"
	StepLegalOfficerReview ApprovalStep = "LEGAL_OFFICER_REVIEW"
	StepCourtOfficerReview ApprovalStep = "COURT_OFFICER_REVIEW"
	StepLegalGMFinal       ApprovalStep = "LEGAL_GM_FINAL"
)

type FormID int

const (
	FormContractReview        FormID = 1
	FormLeaseAgreement        FormID = 2
	FormLitigationInstruction FormID = 3
)

var formHumanName = map[FormID]string{
	FormContractReview:        "Contract Review",
	FormLeaseAgreement:        "Lease Agreement",
	FormLitigationInstruction: "Litigation Instruction",
}

func (f FormID) ToHuman() string {
	if human, exist := formHumanName[f]; exist {
		return human
	}
	return "Form"
}

func (f FormID) Validate() error {
	if _, ok := formHumanName[f]; !ok {
		return errors.Errorf("unknown form: %v", int(f))
	}
	return nil
}

type DocumentType string

const (
	DocumentCommon            DocumentType = "Common"
	DocumentLOPreparedInitial DocumentType = "LO_PREPARED_INITIAL"
	DocumentLOPreparedFinal   DocumentType = "LO_PREPARED_FINAL"
	DocumentLORequested       DocumentType = "LO_REQUESTED"
)

// IsInitiatorProvided reports documents that come from the initiator's
// parties rather than from the legal officer.
func (t DocumentType) IsInitiatorProvided() bool {
	switch t {
	case DocumentLOPreparedInitial, DocumentLOPreparedFinal, DocumentLORequested:
		return false
	}
	return true
}

type DocumentStatus string

const (
	DocumentNone      DocumentStatus = "NONE"
	DocumentUploaded  DocumentStatus = "UPLOADED"
	DocumentOK        DocumentStatus = "OK"
	DocumentAttention DocumentStatus = "ATTENTION"
	DocumentResubmit  DocumentStatus = "RESUBMIT"
)

func (s DocumentStatus) Validate() error {
	switch s {
	case DocumentNone, DocumentUploaded, DocumentOK, DocumentAttention, DocumentResubmit:
		return nil
	}
	return errors.Errorf("unknown document status: %q", string(s))
}

// IsReviewVerdict reports statuses a reviewer may set.
func (s DocumentStatus) IsReviewVerdict() bool {
	return s == DocumentOK || s == DocumentAttention || s == DocumentResubmit
}
