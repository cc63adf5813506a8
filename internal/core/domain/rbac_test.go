package domain

import (
	"reflect"
	"testing"
)

var allRoles = []Role{RoleAgencyAdmin, RoleAgencyStaff, RoleClientAdmin, RoleClientUser}

func TestPermissionsFor_NonEmptyAndStable(t *testing.T) {
	for _, role := range allRoles {
		first := PermissionsFor(role)
		if len(first) == 0 {
			t.Fatalf("role %s has no permissions", role)
		}
		second := PermissionsFor(role)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("role %s: permission set not stable across calls", role)
		}
	}
}

func TestPermissionsFor_ReturnsCopy(t *testing.T) {
	perms := PermissionsFor(RoleClientUser)
	perms[0] = PermSystemConfig

	if HasPermission(RoleClientUser, PermSystemConfig) {
		t.Fatalf("mutating the returned slice leaked into the role table")
	}
}

func TestHasPermission_ConsistentWithPermissionsFor(t *testing.T) {
	for _, role := range allRoles {
		assigned := make(map[Permission]bool)
		for _, p := range PermissionsFor(role) {
			assigned[p] = true
		}
		for _, p := range AllPermissions() {
			if HasPermission(role, p) != assigned[p] {
				t.Fatalf("role %s, permission %s: HasPermission disagrees with PermissionsFor", role, p)
			}
		}
	}
}

func TestIsAgencyRole(t *testing.T) {
	cases := map[Role]bool{
		RoleAgencyAdmin: true,
		RoleAgencyStaff: true,
		RoleClientAdmin: false,
		RoleClientUser:  false,
	}
	for role, want := range cases {
		if got := IsAgencyRole(role); got != want {
			t.Fatalf("IsAgencyRole(%s) = %v, want %v", role, got, want)
		}
	}
}

func TestAgencyAdmin_HoldsEveryPermission(t *testing.T) {
	for _, p := range AllPermissions() {
		if !HasPermission(RoleAgencyAdmin, p) {
			t.Fatalf("agency_admin missing %s", p)
		}
	}
}

func TestApproveContent_DistinguishesClientRoles(t *testing.T) {
	if !HasPermission(RoleClientAdmin, PermApproveContent) {
		t.Fatalf("client_admin must hold approve_content")
	}
	if HasPermission(RoleClientUser, PermApproveContent) {
		t.Fatalf("client_user must not hold approve_content")
	}
}

func TestBillingManagement_DistinguishesAgencyRoles(t *testing.T) {
	if !HasPermission(RoleAgencyAdmin, PermBillingManagement) {
		t.Fatalf("agency_admin must hold billing_management")
	}
	if HasPermission(RoleAgencyStaff, PermBillingManagement) {
		t.Fatalf("agency_staff must not hold billing_management")
	}
}

func TestUserPredicates(t *testing.T) {
	admin := &User{Role: RoleClientAdmin}
	if !admin.CanApproveContent() || !admin.CanManageUsers() {
		t.Fatalf("client_admin predicates wrong")
	}
	if admin.IsAgencyUser() || admin.CanViewAllClients() {
		t.Fatalf("client_admin must not be an agency user")
	}

	staff := &User{Role: RoleAgencyStaff}
	if !staff.IsAgencyUser() || !staff.CanViewAllClients() {
		t.Fatalf("agency_staff predicates wrong")
	}
	if staff.CanApproveContent() {
		t.Fatalf("agency_staff must not approve content")
	}
}

func TestRoleAndPermissionValidity(t *testing.T) {
	for _, role := range allRoles {
		if !role.IsValid() {
			t.Fatalf("role %s should be valid", role)
		}
	}
	if Role("superuser").IsValid() {
		t.Fatalf("unknown role accepted")
	}
	if Permission("delete_everything").IsValid() {
		t.Fatalf("unknown permission accepted")
	}
}
