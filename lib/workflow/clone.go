package workflow

import (
	"slices"

	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"
)

// cloneSubmission copies everything an action may touch, so a rejected
// action leaves the caller's value as it was.
func cloneSubmission(s dbmodels.Submission) dbmodels.Submission {
	out := s
	out.Content = s.Content.Clone()
	out.OfficialUse = s.OfficialUse.Clone()
	if s.ParentID != nil {
		parentID := *s.ParentID
		out.ParentID = &parentID
	}
	out.Parties = slices.Clone(s.Parties)
	out.Approvals = slices.Clone(s.Approvals)
	out.Documents = slices.Clone(s.Documents)
	out.Comments = slices.Clone(s.Comments)
	out.SpecialApprovers = slices.Clone(s.SpecialApprovers)
	return out
}
