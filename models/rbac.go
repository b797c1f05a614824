package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	SubmissionModule Module = "SUBMISSION"
	DirectoryModule  Module = "DIRECTORY"
	FormConfigModule Module = "FORM_CONFIG"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	ViewPermission   Permission = "VIEW"
	FlowPermission   Permission = "FLOW"
	FilesPermission  Permission = "FILES"
	ManagePermission Permission = "MANAGE"
)
