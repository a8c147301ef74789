package rbac

import "github.com/Arun-hash30/Attendence-helix/internal/domain"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Permission catalog. Owner checks for :userId routes happen in middleware.OwnerOrPermission,
// so plain users only need the permissions listed for RoleUser.
var permissions = []domain.PermissionResponse{
	{Resource: "leave", Action: "apply", Label: "Apply for leave", Category: "leave"},
	{Resource: "leave", Action: "calendar", Label: "View leave calendar", Category: "leave"},
	{Resource: "leave", Action: "read_all", Label: "View all leave requests", Category: "leave"},
	{Resource: "leave", Action: "manage", Label: "Apply leave on behalf of users", Category: "leave"},
	{Resource: "leave", Action: "approve", Label: "Approve or reject leave", Category: "leave"},
	{Resource: "payslip", Action: "read", Label: "View own payslips", Category: "payslip"},
	{Resource: "payslip", Action: "manage", Label: "Manage salaries and payslips", Category: "payslip"},
	{Resource: "user", Action: "read", Label: "View users", Category: "user"},
	{Resource: "rbac", Action: "read", Label: "View roles", Category: "rbac"},
}

var rolePermissions = map[string][]string{
	RoleUser: {
		"leave:apply",
		"leave:calendar",
		"payslip:read",
	},
	RoleAdmin: {
		"leave:read_all",
		"leave:manage",
		"leave:approve",
		"payslip:manage",
		"user:read",
		"rbac:read",
	},
}

// admin inherits everything granted to user
var roleInherits = map[string][]string{
	RoleAdmin: {RoleUser},
}
