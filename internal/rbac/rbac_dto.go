package rbac

type Permission struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type RoleResponse struct {
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        string       `json:"name" binding:"required,oneof=viewer editor admin"`
	Permissions []Permission `json:"permissions" binding:"required,dive"`
}
