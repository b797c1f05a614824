package workflow

import (
	"slices"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
)

// rule is one row of the transition table.
// A nil from matches every in-flight status, a nil stages matches every stage.
// A rule with a step resolves the actor's ledger record at that step.
type rule struct {
	from    []models.SubmissionStatus
	stages  []models.LOStage
	roles   []models.WorkflowRole
	action  models.WorkflowAction
	step    models.ApprovalStep
	special bool
	anyone  bool
	guard   func(t *txn) error
	effect  func(t *txn)
}

var (
	firstLevel     = []models.WorkflowRole{models.RoleBUM, models.RoleFBP, models.RoleClusterHead}
	initiatorOnly  = []models.WorkflowRole{models.RoleInitiator}
	legalGMOnly    = []models.WorkflowRole{models.RoleLegalGM}
	legalOfficer   = []models.WorkflowRole{models.RoleLegalOfficer}
	courtOfficer   = []models.WorkflowRole{models.RoleCourtOfficer}
	specialOnly    = []models.WorkflowRole{models.RoleSpecialApprover}
	everyRole      = []models.WorkflowRole{models.RoleInitiator, models.RoleBUM, models.RoleFBP, models.RoleClusterHead, models.RoleCEO, models.RoleLegalGM, models.RoleLegalOfficer, models.RoleCourtOfficer, models.RoleSpecialApprover}
	officerStages  = []models.LOStage{models.StageActive, models.StageAssignCourtOfficer, models.StageReviewForGM}
	reviewStages   = []models.LOStage{models.StageActive, models.StageReviewForGM}
	finalStages    = []models.LOStage{models.StagePostGMApproval}
	reassignStages = []models.LOStage{models.StageReassigned}
)

func statuses(list ...models.SubmissionStatus) []models.SubmissionStatus {
	return list
}

var transitions = []rule{
	{
		from:   statuses(models.StatusDraft),
		roles:  initiatorOnly,
		action: models.ActionSubmit,
		guard:  guardMandatoryDocuments,
		effect: submitDraft,
	},
	{
		from:   statuses(models.StatusPendingApproval),
		roles:  firstLevel,
		action: models.ActionApprove,
		step:   models.StepFirstLevel,
		effect: approveFirstLevel,
	},
	{
		from:   statuses(models.StatusPendingApproval),
		roles:  firstLevel,
		action: models.ActionSendBack,
		step:   models.StepFirstLevel,
		effect: sendBack,
	},
	{
		from:   statuses(models.StatusPendingApproval),
		roles:  firstLevel,
		action: models.ActionCancel,
		step:   models.StepFirstLevel,
		effect: cancel,
	},
	{
		from:   statuses(models.StatusPendingCEO),
		roles:  []models.WorkflowRole{models.RoleCEO},
		action: models.ActionApprove,
		step:   models.StepCEOReview,
		effect: approveCEO,
	},
	{
		from:   statuses(models.StatusPendingCEO),
		roles:  []models.WorkflowRole{models.RoleCEO},
		action: models.ActionSendBack,
		step:   models.StepCEOReview,
		effect: sendBack,
	},
	{
		from:   statuses(models.StatusPendingLegalGM),
		roles:  legalGMOnly,
		action: models.ActionApprove,
		step:   models.StepLegalGMReview,
		guard:  all(guardNoPendingSpecialApprovers, guardAssignee("legal officer")),
		effect: approveLegalGMReview,
	},
	{
		from:   statuses(models.StatusPendingLegalGM),
		roles:  legalGMOnly,
		action: models.ActionSendBack,
		step:   models.StepLegalGMReview,
		effect: sendBack,
	},
	{
		from:   statuses(models.StatusPendingLegalGM),
		roles:  legalGMOnly,
		action: models.ActionCancel,
		step:   models.StepLegalGMReview,
		effect: cancel,
	},
	{
		from:   statuses(models.StatusPendingLegalGM),
		roles:  legalGMOnly,
		action: models.ActionAssignSpecialApprover,
		guard:  guardSpecialApprover,
		effect: assignSpecialApprover,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: reviewStages,
		roles:  legalOfficer,
		action: models.ActionSubmitToLegalGM,
		step:   models.StepLegalOfficerReview,
		guard:  guardNoPendingSpecialApprovers,
		effect: submitToLegalGM,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: officerStages,
		roles:  legalOfficer,
		action: models.ActionReturnToInitiator,
		step:   models.StepLegalOfficerReview,
		effect: sendBack,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: officerStages,
		roles:  legalOfficer,
		action: models.ActionAssignSpecialApprover,
		guard:  guardSpecialApprover,
		effect: assignSpecialApprover,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: []models.LOStage{models.StageAssignCourtOfficer},
		roles:  legalOfficer,
		action: models.ActionAssignCourtOfficer,
		guard:  guardAssignee("court officer"),
		effect: assignCourtOfficer,
	},
	{
		from:   statuses(models.StatusPendingCourtOfficer),
		roles:  courtOfficer,
		action: models.ActionCourtOfficerSubmit,
		step:   models.StepCourtOfficerReview,
		effect: courtOfficerSubmit,
	},
	{
		from:   statuses(models.StatusPendingLegalGMFinal),
		roles:  legalGMOnly,
		action: models.ActionApprove,
		step:   models.StepLegalGMFinal,
		effect: approveLegalGMFinal,
	},
	{
		from:   statuses(models.StatusPendingLegalGMFinal),
		roles:  legalGMOnly,
		action: models.ActionSendBack,
		step:   models.StepLegalGMFinal,
		effect: sendBack,
	},
	{
		from:   statuses(models.StatusPendingLegalGMFinal),
		roles:  legalGMOnly,
		action: models.ActionCancel,
		step:   models.StepLegalGMFinal,
		effect: cancel,
	},
	{
		from:   statuses(models.StatusPendingLegalGMFinal, models.StatusPendingLegalOfficer),
		roles:  legalGMOnly,
		action: models.ActionReassignOfficer,
		guard:  all(guardAssignee("legal officer"), guardNewOfficer),
		effect: reassignOfficer,
	},
	{
		from:   statuses(models.StatusPendingLegalGMFinal, models.StatusPendingLegalOfficer),
		stages: reassignStages,
		roles:  legalOfficer,
		action: models.ActionAcknowledgeHandover,
		effect: acknowledgeHandover,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: finalStages,
		roles:  legalOfficer,
		action: models.ActionUpdateOfficialUse,
		guard:  guardOfficialUsePayload,
		effect: updateOfficialUse,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: finalStages,
		roles:  legalOfficer,
		action: models.ActionComplete,
		guard:  guardOfficialUseComplete,
		effect: complete,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: officerStages,
		roles:  legalOfficer,
		action: models.ActionSetDocumentStatus,
		guard:  guardDocumentStatus,
		effect: setDocumentStatus,
	},
	{
		from:   statuses(models.StatusPendingLegalOfficer),
		stages: officerStages,
		roles:  legalOfficer,
		action: models.ActionRequestDocument,
		guard:  guardDocumentLabel,
		effect: requestDocument,
	},
	{
		from:   statuses(models.StatusSentBack),
		roles:  initiatorOnly,
		action: models.ActionResubmit,
		guard:  guardResubmission,
		effect: resubmit,
	},
	{
		roles:   specialOnly,
		action:  models.ActionApprove,
		special: true,
		effect:  approveSpecial,
	},
	{
		roles:   specialOnly,
		action:  models.ActionSendBack,
		special: true,
		effect:  sendBackSpecial,
	},
	{
		roles:   specialOnly,
		action:  models.ActionCancel,
		special: true,
		effect:  cancelSpecial,
	},
	{
		roles:  []models.WorkflowRole{models.RoleInitiator, models.RoleLegalOfficer},
		action: models.ActionAttachFile,
		guard:  guardAttachFile,
		effect: attachFile,
	},
	{
		roles:  everyRole,
		action: models.ActionAddComment,
		anyone: true,
		effect: addComment,
	},
}

func (r rule) matchesState(status models.SubmissionStatus, stage models.LOStage) bool {
	if r.from == nil {
		if !status.IsInFlight() {
			return false
		}
	} else if !slices.Contains(r.from, status) {
		return false
	}
	return r.stages == nil || slices.Contains(r.stages, stage)
}

func lookupRule(status models.SubmissionStatus, stage models.LOStage, role models.WorkflowRole, action models.WorkflowAction) (rule, bool) {
	for _, r := range transitions {
		if r.action != action || !slices.Contains(r.roles, role) {
			continue
		}
		if r.matchesState(status, stage) {
			return r, true
		}
	}
	return rule{}, false
}

// expectedRoles lists the roles the chain is waiting on in the given state.
// Rules open to any in-flight status (comments, files, special approvers)
// do not make their roles expected.
func expectedRoles(status models.SubmissionStatus, stage models.LOStage) []models.WorkflowRole {
	result := []models.WorkflowRole{}
	for _, r := range transitions {
		if r.from == nil || !r.matchesState(status, stage) {
			continue
		}
		for _, role := range r.roles {
			if !slices.Contains(result, role) {
				result = append(result, role)
			}
		}
	}
	return result
}

func all(guards ...func(t *txn) error) func(t *txn) error {
	return func(t *txn) error {
		for _, guard := range guards {
			if err := guard(t); err != nil {
				return err
			}
		}
		return nil
	}
}
