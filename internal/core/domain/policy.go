package domain

import "strings"

// Action is an administrative operation the policy gate rules on.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// NormalizeRole lower-cases and trims a role value. Every comparison and
// every persisted role goes through this first.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// CanManageUsers reports whether a caller role may invoke the administrative
// operations at all.
func CanManageUsers(callerRole string) bool {
	switch NormalizeRole(callerRole) {
	case RoleAdmin, RoleManager:
		return true
	}
	return false
}

// CanAssignRole enforces the role hierarchy: only an admin may hand out the
// two management roles. Operational roles are assignable by both.
func CanAssignRole(callerRole, targetRole string) bool {
	if NormalizeRole(callerRole) == RoleAdmin {
		return true
	}
	target := NormalizeRole(targetRole)
	return target != RoleAdmin && target != RoleManager
}

// Allowed is the single authorization gate shared by the three
// user-administration entry points. targetRole is empty when the operation
// does not assign a role (delete, or update without a role field).
// Self-deletion is identifier-based and checked by the service, not here.
func Allowed(callerRole string, action Action, targetRole string) bool {
	if !CanManageUsers(callerRole) {
		return false
	}
	switch action {
	case ActionCreate, ActionUpdate:
		return targetRole == "" || CanAssignRole(callerRole, targetRole)
	case ActionDelete:
		return true
	}
	return false
}
