package legalapimodels

import (
	"net/mail"
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
)

type DirectoryUserData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	IsActive   *bool  `json:"isActive"`
}

func (r DirectoryUserData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.Errorf("invalid email: %q", r.Email)
	}
	if _, err := models.ParseWorkflowRole(r.Role); err != nil {
		return err
	}
	return nil
}

func (r DirectoryUserData) ToModel() dbmodels.DirectoryUser {
	role, _ := models.ParseWorkflowRole(r.Role)
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return dbmodels.DirectoryUser{
		Name:       strings.TrimSpace(r.Name),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Role:       role,
		Department: strings.TrimSpace(r.Department),
		IsActive:   isActive,
	}
}

type DirectoryUserView struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Role       models.WorkflowRole `json:"role"`
	RoleName   string              `json:"roleName"`
	Department string              `json:"department"`
	IsActive   bool                `json:"isActive"`
}

func DirectoryUserConvert(rec dbmodels.DirectoryUser) DirectoryUserView {
	return DirectoryUserView{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Role:       rec.Role,
		RoleName:   rec.Role.ToHuman(),
		Department: rec.Department,
		IsActive:   rec.IsActive,
	}
}
