package middleware

import "testing"

func TestHasPermission(t *testing.T) {
	user := &AppUser{Permissions: []string{"run.view", "run.create"}}

	if !HasPermission(user, "run.view") {
		t.Error("expected run.view to be granted")
	}
	if HasPermission(user, "run.delete") {
		t.Error("expected run.delete to be denied")
	}
	if HasPermission(nil, "run.view") {
		t.Error("expected nil user to have no permissions")
	}
}

func TestHasAnyPermission(t *testing.T) {
	user := &AppUser{Permissions: []string{"run.view"}}

	if !HasAnyPermission(user, "run.view:all", "run.view") {
		t.Error("expected one of the permissions to match")
	}
	if HasAnyPermission(user, "run.create", "run.delete") {
		t.Error("expected no permission to match")
	}
	if HasAnyPermission(nil, "run.view") {
		t.Error("expected nil user to have no permissions")
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(&AppUser{Role: "admin"}) {
		t.Error("expected admin role to be admin")
	}
	if IsAdmin(&AppUser{Role: "user"}) {
		t.Error("expected user role to not be admin")
	}
	if IsAdmin(nil) {
		t.Error("expected nil user to not be admin")
	}
}
