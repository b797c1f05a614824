package rbac

import (
	"slices"
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/pkg/errors"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	Register(rule Rule) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		tables:      map[HTTPMethod]*routeTable{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	for _, rule := range legalRules() {
		if err := i.Register(rule); err != nil {
			panic(err.Error())
		}
	}
	Instance = i
}

type impl struct {
	tables      map[HTTPMethod]*routeTable
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	table, ok := i.tables[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	path = normalizePath(path)
	if handler, ok := table.literal[path]; ok {
		return handler, true
	}
	segments := splitPath(path)
	for _, template := range table.templates {
		if template.matches(segments) {
			return template.handler, true
		}
	}
	return nil, false
}

func (i *impl) Register(rule Rule) error {
	path, method, err := parseRoute(rule.Route)
	if err != nil {
		return err
	}
	if len(rule.Roles) == 0 {
		return errors.Errorf("no roles for route %v", rule.Route)
	}
	i.grant(rule)

	handler := rule.Handler
	if handler == nil {
		handler = AllowByRoleFunc(rule.Roles)
	}
	table, ok := i.tables[method]
	if !ok {
		table = &routeTable{literal: map[string]models.RbacFunc{}}
		i.tables[method] = table
	}
	if !strings.Contains(path, "{") {
		table.literal[path] = handler
		return nil
	}
	template := routeTemplate{handler: handler}
	for _, segment := range splitPath(path) {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			segment = ""
		}
		template.segments = append(template.segments, segment)
	}
	table.templates = append(table.templates, template)
	return nil
}

// grant records the permission in the map served to the UI.
func (i *impl) grant(rule Rule) {
	for _, role := range rule.Roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[rule.Module], rule.Permission) {
			modules[rule.Module] = append(modules[rule.Module], rule.Permission)
		}
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func AllowFunc() models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return slices.Contains(accessRoles, role)
	}
}

// parseRoute splits "/api/v1/legal/submissions [post]" into path and method.
func parseRoute(route string) (path string, method HTTPMethod, err error) {
	route = strings.TrimSpace(route)
	open := strings.LastIndex(route, "[")
	if open == -1 || !strings.HasSuffix(route, "]") {
		return "", "", errors.Errorf("method not provided for route (%v)", route)
	}
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(route[open+1 : len(route)-1])))
	if method == "" {
		return "", "", errors.Errorf("method not provided for route (%v)", route)
	}
	return normalizePath(route[:open]), method, nil
}

func splitPath(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
