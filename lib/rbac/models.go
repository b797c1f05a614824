package rbac

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
	PATCH  HTTPMethod = "PATCH"
)

// Rule grants a permission on one route to a set of system roles.
type Rule struct {
	Module     models.Module
	Permission models.Permission
	Roles      []models.UserRole
	Route      string // "/api/v1/legal/submissions/{id} [get]"
	Handler    models.RbacFunc
}

// routeTable holds the rules of one http method. Literal paths are looked up
// first, then templates in registration order.
type routeTable struct {
	literal   map[string]models.RbacFunc
	templates []routeTemplate
}

type routeTemplate struct {
	segments []string // "" matches any single segment
	handler  models.RbacFunc
}

func (t routeTemplate) matches(segments []string) bool {
	if len(segments) != len(t.segments) {
		return false
	}
	for idx, segment := range t.segments {
		if segment != "" && segment != segments[idx] {
			return false
		}
	}
	return true
}
