package domain

// Role categorizes an authenticated actor. Agency roles see every client;
// client roles are scoped to the single client they belong to.
type Role string

const (
	RoleAgencyAdmin Role = "agency_admin"
	RoleAgencyStaff Role = "agency_staff"
	RoleClientAdmin Role = "client_admin"
	RoleClientUser  Role = "client_user"
)

// Permission is an atomic capability token gating one class of action or view.
type Permission string

const (
	PermViewAllClients    Permission = "view_all_clients"
	PermCreateContent     Permission = "create_content"
	PermEditContent       Permission = "edit_content"
	PermApproveContent    Permission = "approve_content"
	PermRejectContent     Permission = "reject_content"
	PermViewAnalytics     Permission = "view_analytics"
	PermManageUsers       Permission = "manage_users"
	PermManageProjects    Permission = "manage_projects"
	PermBillingManagement Permission = "billing_management"
	PermSendMessages      Permission = "send_messages"
	PermSystemConfig      Permission = "system_config"
)

// rolePermissions assigns each role its fixed capability set. Pure data:
// never mutated at runtime. Role switching changes which role a session
// holds, not this table. No inheritance between roles — an access check is
// a single membership test.
var rolePermissions = map[Role][]Permission{
	RoleAgencyAdmin: {
		PermViewAllClients,
		PermCreateContent,
		PermEditContent,
		PermApproveContent,
		PermRejectContent,
		PermViewAnalytics,
		PermManageUsers,
		PermManageProjects,
		PermBillingManagement,
		PermSendMessages,
		PermSystemConfig,
	},
	RoleAgencyStaff: {
		PermViewAllClients,
		PermCreateContent,
		PermEditContent,
		PermViewAnalytics,
		PermManageProjects,
		PermSendMessages,
	},
	RoleClientAdmin: {
		PermApproveContent,
		PermRejectContent,
		PermViewAnalytics,
		PermManageUsers,
		PermSendMessages,
	},
	RoleClientUser: {
		PermViewAnalytics,
		PermSendMessages,
	},
}

// PermissionsFor returns the permission set assigned to role. The returned
// slice is a copy; callers may not mutate the underlying table.
func PermissionsFor(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether role holds permission. Pure and
// deterministic; "permission absent" is a normal negative result, not an
// error.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAgencyRole reports whether role belongs to the agency side (full-roster
// dashboards) as opposed to a single-client view.
func IsAgencyRole(role Role) bool {
	return role == RoleAgencyAdmin || role == RoleAgencyStaff
}

// IsClientRole reports whether role is scoped to a single client and
// therefore requires a client identity.
func IsClientRole(role Role) bool {
	return role == RoleClientAdmin || role == RoleClientUser
}

// IsValid reports whether role is one of the four known roles.
func (r Role) IsValid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// AllPermissions returns the closed set of known permissions.
func AllPermissions() []Permission {
	return []Permission{
		PermViewAllClients,
		PermCreateContent,
		PermEditContent,
		PermApproveContent,
		PermRejectContent,
		PermViewAnalytics,
		PermManageUsers,
		PermManageProjects,
		PermBillingManagement,
		PermSendMessages,
		PermSystemConfig,
	}
}

// IsValid reports whether p is one of the known permissions.
func (p Permission) IsValid() bool {
	for _, known := range AllPermissions() {
		if p == known {
			return true
		}
	}
	return false
}
