package directoryhandler

import (
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/db"
	directorystore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory/store"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	ListByRole(role models.WorkflowRole) ([]legalapimodels.DirectoryUserView, error)
	Upsert(data legalapimodels.DirectoryUserData) (*legalapimodels.DirectoryUserView, error)
	// ResolveAssignee finds an active directory user holding role by id or email.
	ResolveAssignee(id, email string, role models.WorkflowRole) (*workflow.Assignee, error)
	// HoldsRole reports whether email belongs to an active user with role.
	HoldsRole(email string, role models.WorkflowRole) (bool, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: directorystore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: directorystore.NewInstance(tx),
	}
}

type impl struct {
	store directorystore.Provider
}

func (i impl) ListByRole(role models.WorkflowRole) ([]legalapimodels.DirectoryUserView, error) {
	list, err := i.store.ListByRole(role, true)
	if err != nil {
		return nil, workflow.StoreFailure(err, "error reading directory")
	}
	result := make([]legalapimodels.DirectoryUserView, 0, len(list))
	for _, rec := range list {
		result = append(result, legalapimodels.DirectoryUserConvert(rec))
	}
	return result, nil
}

func (i impl) Upsert(data legalapimodels.DirectoryUserData) (*legalapimodels.DirectoryUserView, error) {
	rec := data.ToModel()
	if err := i.store.Upsert(&rec); err != nil {
		return nil, workflow.StoreFailure(errors.Wrap(err, "error saving directory user"), "error saving directory user")
	}
	log.
		WithField("directory_user_email", rec.Email).
		WithField("role", rec.Role).
		Info("directory user saved")
	result := legalapimodels.DirectoryUserConvert(rec)
	return &result, nil
}

func (i impl) ResolveAssignee(id, email string, role models.WorkflowRole) (*workflow.Assignee, error) {
	id = strings.TrimSpace(id)
	email = strings.TrimSpace(email)
	if id == "" && email == "" {
		return nil, nil
	}
	rec, err := i.lookup(id, email)
	if err != nil {
		return nil, workflow.StoreFailure(err, "error reading directory")
	}
	key := id
	if key == "" {
		key = email
	}
	if rec == nil {
		return nil, workflow.ValidationFailed("assignee "+key+" is not in the directory", "assignee")
	}
	if !rec.IsActive {
		return nil, workflow.ValidationFailed("assignee "+key+" is not active", "assignee")
	}
	if rec.Role != role {
		return nil, workflow.ValidationFailed("assignee "+key+" is not a "+role.ToHuman(), "assignee")
	}
	return &workflow.Assignee{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Department: rec.Department,
	}, nil
}

func (i impl) lookup(id, email string) (*dbmodels.DirectoryUser, error) {
	if id != "" {
		return i.store.GetByID(id)
	}
	return i.store.GetByEmail(email)
}

func (i impl) HoldsRole(email string, role models.WorkflowRole) (bool, error) {
	rec, err := i.store.GetByEmail(email)
	if err != nil {
		return false, workflow.StoreFailure(err, "error reading directory")
	}
	return rec != nil && rec.IsActive && rec.Role == role, nil
}
