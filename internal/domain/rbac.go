package domain

// EnforceRequest is evaluated against the role policy; Subject is kept for logging.
type EnforceRequest struct {
	Subject  string `json:"subject"`
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

type RoleResponse struct {
	Name        string               `json:"name"`
	Inherits    []string             `json:"inherits,omitempty"`
	Permissions []PermissionResponse `json:"permissions"`
}
