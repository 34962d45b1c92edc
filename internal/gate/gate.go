// Package gate decides whether a protected view may render for the current
// session and profile.
package gate

import "github.com/optifit/web/internal/model"

type SessionState int

const (
	SessionUnresolved SessionState = iota
	SessionAbsent
	SessionPresent
)

type ProfileStatus int

const (
	ProfilePending ProfileStatus = iota
	ProfileFound
	ProfileNotFound
	ProfileFailed
)

func (s ProfileStatus) String() string {
	switch s {
	case ProfileFound:
		return "found"
	case ProfileNotFound:
		return "not_found"
	case ProfileFailed:
		return "failed"
	default:
		return "pending"
	}
}

type Decision int

const (
	// DecisionLoading renders a placeholder until state settles.
	DecisionLoading Decision = iota
	// DecisionAuthenticate defers to the login requirement.
	DecisionAuthenticate
	// DecisionRedirect sends the user to onboarding.
	DecisionRedirect
	// DecisionRender shows the protected view.
	DecisionRender
)

func (d Decision) String() string {
	switch d {
	case DecisionAuthenticate:
		return "authenticate"
	case DecisionRedirect:
		return "redirect"
	case DecisionRender:
		return "render"
	default:
		return "loading"
	}
}

type Input struct {
	Session       SessionState
	ProfileStatus ProfileStatus
	// Profile is only read when ProfileStatus is ProfileFound.
	Profile *model.Profile
}

// Evaluate is pure. It never redirects while anything is still unresolved,
// and fails closed toward onboarding when the profile cannot be read.
func Evaluate(in Input) Decision {
	if in.Session == SessionUnresolved || in.ProfileStatus == ProfilePending {
		return DecisionLoading
	}
	if in.Session == SessionAbsent {
		return DecisionAuthenticate
	}

	switch in.ProfileStatus {
	case ProfileFound:
		if in.Profile.IsComplete() {
			return DecisionRender
		}
		return DecisionRedirect
	default:
		return DecisionRedirect
	}
}
