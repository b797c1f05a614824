package models

// UserRole is the system role carried in the access token. It decides which
// API sections a caller may reach; workflow permissions are decided by WorkflowRole.
type UserRole string

const (
	LegalAdminRole UserRole = "LEGAL_ADMIN"
	LegalUserRole  UserRole = "LEGAL_USER"
)

var roleHumanName = map[UserRole]string{
	LegalAdminRole: "Legal Hub administrator",
	LegalUserRole:  "Legal Hub user",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == LegalAdminRole
}

const SystemUser = "System"
