package rbac

import (
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Casbin model: flat resource/action permissions with role inheritance.
// Policy lives in memory only, the core consumes roles as opaque labels
// handed over by the access-control collaborator.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Built-in roles. Editor inherits viewer, admin inherits editor.
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

var defaultPolicies = [][]string{
	{RoleViewer, "employees", "read"},
	{RoleViewer, "report", "read"},
	{RoleViewer, "analytics", "read"},
	{RoleEditor, "employees", "write"},
	{RoleEditor, "dataset", "write"},
	{RoleAdmin, "roles", "manage"},
}

var defaultGroupings = [][]string{
	{RoleEditor, RoleViewer},
	{RoleAdmin, RoleEditor},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
	Roles() ([]RoleResponse, error)
	SetRolePermissions(role string, perms []Permission) (RoleResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range defaultGroupings {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enforcer.Enforce(role, resource, action)
}

func (s *service) Roles() ([]RoleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	policies, err := s.enforcer.GetPolicy()
	if err != nil {
		return nil, err
	}

	byRole := map[string][]Permission{
		RoleViewer: nil, RoleEditor: nil, RoleAdmin: nil,
	}
	for _, p := range policies {
		byRole[p[0]] = append(byRole[p[0]], Permission{Resource: p[1], Action: p[2]})
	}

	out := make([]RoleResponse, 0, len(byRole))
	for role, perms := range byRole {
		sort.Slice(perms, func(i, j int) bool {
			if perms[i].Resource != perms[j].Resource {
				return perms[i].Resource < perms[j].Resource
			}
			return perms[i].Action < perms[j].Action
		})
		out = append(out, RoleResponse{Name: role, Permissions: perms})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// SetRolePermissions replaces the direct permissions of a role.
// Inherited permissions are untouched.
func (s *service) SetRolePermissions(role string, perms []Permission) (RoleResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.enforcer.RemoveFilteredPolicy(0, role); err != nil {
		return RoleResponse{}, err
	}
	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(role, p.Resource, p.Action); err != nil {
			return RoleResponse{}, err
		}
	}
	return RoleResponse{Name: role, Permissions: perms}, nil
}
