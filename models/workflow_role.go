package models

import (
	"strings"

	"github.com/pkg/errors"
)

// WorkflowRole is the role a person acts under inside a submission's approval chain.
type WorkflowRole string

const (
	RoleInitiator       WorkflowRole = "INITIATOR"
	RoleBUM             WorkflowRole = "BUM"
	RoleFBP             WorkflowRole = "FBP"
	RoleClusterHead     WorkflowRole = "CLUSTER_HEAD"
	RoleCEO             WorkflowRole = "CEO"
	RoleLegalGM         WorkflowRole = "LEGAL_GM"
	RoleLegalOfficer    WorkflowRole = "LEGAL_OFFICER"
	RoleCourtOfficer    WorkflowRole = "COURT_OFFICER"
	RoleSpecialApprover WorkflowRole = "SPECIAL_APPROVER"
)

var workflowRoleHumanName = map[WorkflowRole]string{
	RoleInitiator:       "Initiator",
	RoleBUM:             "BUM",
	RoleFBP:             "FBP",
	RoleClusterHead:     "Cluster Head",
	RoleCEO:             "CEO",
	RoleLegalGM:         "Legal GM",
	RoleLegalOfficer:    "Legal Officer",
	RoleCourtOfficer:    "Court Officer",
	RoleSpecialApprover: "Special Approver",
}

func (r WorkflowRole) ToHuman() string {
	if human, exist := workflowRoleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// ParseWorkflowRole accepts role strings as the UI and the directory send them
// ("Cluster Head", "cluster_head", "CLUSTER_HEAD") and rejects anything else.
func ParseWorkflowRole(value string) (WorkflowRole, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	role := WorkflowRole(normalized)
	if _, ok := workflowRoleHumanName[role]; !ok {
		return "", errors.Errorf("unknown workflow role: %q", value)
	}
	return role, nil
}

func (r WorkflowRole) IsFirstLevel() bool {
	return r == RoleBUM || r == RoleFBP || r == RoleClusterHead
}

type WorkflowAction string

const (
	ActionSubmit                WorkflowAction = "SUBMIT"
	ActionApprove               WorkflowAction = "APPROVE"
	ActionSendBack              WorkflowAction = "SEND_BACK"
	ActionCancel                WorkflowAction = "CANCEL"
	ActionAssignSpecialApprover WorkflowAction = "ASSIGN_SPECIAL_APPROVER"
	ActionSubmitToLegalGM       WorkflowAction = "SUBMIT_TO_LEGAL_GM"
	ActionReturnToInitiator     WorkflowAction = "RETURN_TO_INITIATOR"
	ActionAssignCourtOfficer    WorkflowAction = "ASSIGN_COURT_OFFICER"
	ActionCourtOfficerSubmit    WorkflowAction = "COURT_OFFICER_SUBMIT"
	ActionReassignOfficer       WorkflowAction = "REASSIGN_OFFICER"
	ActionAcknowledgeHandover   WorkflowAction = "ACKNOWLEDGE_HANDOVER"
	ActionUpdateOfficialUse     WorkflowAction = "UPDATE_OFFICIAL_USE"
	ActionComplete              WorkflowAction = "COMPLETE"
	ActionResubmit              WorkflowAction = "RESUBMIT"
	ActionSetDocumentStatus     WorkflowAction = "SET_DOCUMENT_STATUS"
	ActionRequestDocument       WorkflowAction = "REQUEST_DOCUMENT"
	ActionAttachFile            WorkflowAction = "ATTACH_FILE"
	ActionAddComment            WorkflowAction = "ADD_COMMENT"
)

var actionAliases = map[string]WorkflowAction{
	"APPROVED":  ActionApprove,
	"SENT_BACK": ActionSendBack,
	"CANCELLED": ActionCancel,
	"COMPLETED": ActionComplete,
}

var knownActions = map[WorkflowAction]bool{
	ActionSubmit:                true,
	ActionApprove:               true,
	ActionSendBack:              true,
	ActionCancel:                true,
	ActionAssignSpecialApprover: true,
	ActionSubmitToLegalGM:       true,
	ActionReturnToInitiator:     true,
	ActionAssignCourtOfficer:    true,
	ActionCourtOfficerSubmit:    true,
	ActionReassignOfficer:       true,
	ActionAcknowledgeHandover:   true,
	ActionUpdateOfficialUse:     true,
	ActionComplete:              true,
	ActionResubmit:              true,
	ActionSetDocumentStatus:     true,
	ActionRequestDocument:       true,
	ActionAttachFile:            true,
	ActionAddComment:            true,
}

// ParseWorkflowAction also accepts the past-tense status names the review pages post.
func ParseWorkflowAction(value string) (WorkflowAction, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if alias, ok := actionAliases[normalized]; ok {
		return alias, nil
	}
	action := WorkflowAction(normalized)
	if !knownActions[action] {
		return "", errors.Errorf("unknown workflow action: %q", value)
	}
	return action, nil
}

// IsLedgerVerb reports actions that resolve an approval record.
func (a WorkflowAction) IsLedgerVerb() bool {
	switch a {
	case ActionApprove,
		ActionSendBack,
		ActionCancel,
		ActionSubmitToLegalGM,
		ActionReturnToInitiator,
		ActionCourtOfficerSubmit:
		return true
	}
	return false
}

// RequiresComment reports actions that must carry a reason.
func (a WorkflowAction) RequiresComment() bool {
	switch a {
	case ActionSendBack, ActionCancel, ActionReturnToInitiator, ActionAddComment:
		return true
	}
	return false
}
