package auth

import (
	"jobportal_backend/internal/models"
)

// Action is a closed enumeration of everything the policy table can decide.
type Action string

const (
	ActionCreateJob                Action = "job:create"
	ActionUpdateJob                Action = "job:update"
	ActionDeleteJob                Action = "job:delete"
	ActionViewJob                  Action = "job:view"
	ActionApplyToJob               Action = "application:create"
	ActionListOwnApplications      Action = "application:list_own"
	ActionListReceivedApplications Action = "application:list_received"
	ActionUpdateApplicationStatus  Action = "application:update_status"
)

// Principal is the resolved caller. The zero value is an unauthenticated
// visitor.
type Principal struct {
	ID   string
	Role models.UserRole
}

func (p Principal) Authenticated() bool {
	return p.ID != ""
}

// Resource carries the already-fetched state a decision needs. The guard
// itself never touches storage; callers load state and hand it over.
type Resource struct {
	// OwnerID is the job's employer id. For application actions it is the
	// owner of the application's parent job.
	OwnerID string
	// JobStatus of the job being viewed or applied to.
	JobStatus models.JobStatus
	// HasEmployerProfile reports whether the principal has a completed
	// employer profile (CreateJob precondition).
	HasEmployerProfile bool
	// HasExistingApplication reports whether the principal already applied
	// to this job. Advisory only; the database unique index is the
	// authoritative guard.
	HasExistingApplication bool
}

type DenyReason string

const (
	DenyUnauthenticated      DenyReason = "unauthenticated"
	DenyWrongRole            DenyReason = "wrong_role"
	DenyNotOwner             DenyReason = "not_owner"
	DenyProfileRequired      DenyReason = "profile_required"
	DenyJobInactive          DenyReason = "job_inactive"
	DenyDuplicateApplication DenyReason = "duplicate_application"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// policyRule is one row of the policy table. check returns nil when the rule
// has no opinion and evaluation falls through to the next row.
type policyRule struct {
	action Action
	check  func(p Principal, res Resource) *Decision
}

func denyIf(cond bool, reason DenyReason) *Decision {
	if cond {
		d := deny(reason)
		return &d
	}
	return nil
}

// policyTable holds every authorization rule in evaluation order; the first
// rule that returns a decision wins. Keeping the whole rule set here makes it
// auditable in one place and testable without HTTP or storage.
var policyTable = []policyRule{
	// ViewJob is the only action open to unauthenticated callers.
	{ActionViewJob, func(p Principal, res Resource) *Decision {
		if res.JobStatus == models.JobStatusActive {
			d := allow()
			return &d
		}
		if p.Authenticated() && p.ID == res.OwnerID {
			d := allow()
			return &d
		}
		d := deny(DenyJobInactive)
		return &d
	}},

	// Everything below requires an authenticated principal.
	{"", func(p Principal, res Resource) *Decision {
		return denyIf(!p.Authenticated(), DenyUnauthenticated)
	}},

	{ActionCreateJob, func(p Principal, res Resource) *Decision {
		if d := denyIf(p.Role != models.UserRoleEmployer, DenyWrongRole); d != nil {
			return d
		}
		return denyIf(!res.HasEmployerProfile, DenyProfileRequired)
	}},

	{ActionUpdateJob, checkJobOwnership},
	{ActionDeleteJob, checkJobOwnership},

	{ActionApplyToJob, func(p Principal, res Resource) *Decision {
		if d := denyIf(p.Role != models.UserRoleJobSeeker, DenyWrongRole); d != nil {
			return d
		}
		if d := denyIf(res.JobStatus != models.JobStatusActive, DenyJobInactive); d != nil {
			return d
		}
		return denyIf(res.HasExistingApplication, DenyDuplicateApplication)
	}},

	{ActionListOwnApplications, func(p Principal, res Resource) *Decision {
		return denyIf(p.Role != models.UserRoleJobSeeker, DenyWrongRole)
	}},

	{ActionListReceivedApplications, func(p Principal, res Resource) *Decision {
		return denyIf(p.Role != models.UserRoleEmployer, DenyWrongRole)
	}},

	{ActionUpdateApplicationStatus, checkJobOwnership},
}

// checkJobOwnership covers the employer-and-owner actions: UpdateJob,
// DeleteJob and UpdateApplicationStatus (owner of the parent job).
func checkJobOwnership(p Principal, res Resource) *Decision {
	if d := denyIf(p.Role != models.UserRoleEmployer, DenyWrongRole); d != nil {
		return d
	}
	return denyIf(res.OwnerID != p.ID, DenyNotOwner)
}

// Authorize walks the policy table in order and returns the first decision
// that applies to the action. Unknown actions are denied.
func Authorize(p Principal, action Action, res Resource) Decision {
	for _, rule := range policyTable {
		if rule.action != "" && rule.action != action {
			continue
		}
		if d := rule.check(p, res); d != nil {
			return *d
		}
		if rule.action == action {
			// The action's own rule fell through all its checks.
			return allow()
		}
	}
	return deny(DenyWrongRole)
}
