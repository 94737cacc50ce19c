package models

// Role is a named permission level a user holds within one organization
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// DefaultAdminRoles is the default allowed-role set for mutating operations.
// Callers pass an explicit set when they need a different policy.
var DefaultAdminRoles = []Role{RoleOwner, RoleAdmin}

// Provider identifies a hosted-repository platform
type Provider string

const (
	ProviderGitHub Provider = "github"
	ProviderGitee  Provider = "gitee"
)

// TaskStatus tracks the recorded state of a pipeline run
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusSucceeded TaskStatus = "succeeded"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusCancelled TaskStatus = "cancelled"
)
