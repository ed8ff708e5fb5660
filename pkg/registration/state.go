package registration

import "github.com/bizmandi/storefront/pkg/domain"

// State is where a seller currently is in the signup flow. The flow is
// driven by stateless HTTP requests, so the state is persisted per
// mobile number and every request validates its transition instead of
// trusting the client.
type State int

const (
	// StateMobile is the entry point: mobile number not yet verified
	StateMobile State = iota
	// StateOTPSent means a code was issued and is awaiting verification
	StateOTPSent
	// StateOTPVerified means the mobile number is proven; the profile
	// wizard is unlocked
	StateOTPVerified
	// StateSubmitting means the final submission sequence is running
	StateSubmitting
	// StateDone means the registration completed and a store exists
	StateDone
	// StateFailed means the last submission attempt broke partway; a
	// retry resumes from the furthest completed stage
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateMobile:
		return "mobile"
	case StateOTPSent:
		return "otp_sent"
	case StateOTPVerified:
		return "otp_verified"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ParseState maps the stored form back to a State. Anything
// unrecognized falls back to the entry state.
func ParseState(s string) State {
	switch s {
	case "otp_sent":
		return StateOTPSent
	case "otp_verified":
		return StateOTPVerified
	case "submitting":
		return StateSubmitting
	case "done":
		return StateDone
	case "failed":
		return StateFailed
	default:
		return StateMobile
	}
}

// transitions lists every legal edge. Resending a code is otp_sent to
// otp_sent. A failed submission goes back through submitting on retry.
var transitions = map[State][]State{
	StateMobile:      {StateOTPSent},
	StateOTPSent:     {StateOTPSent, StateOTPVerified},
	StateOTPVerified: {StateOTPSent, StateSubmitting},
	StateSubmitting:  {StateDone, StateFailed},
	StateFailed:      {StateSubmitting, StateOTPSent},
	StateDone:        {},
}

// CanTransition reports whether moving from s to next is legal
func (s State) CanTransition(next State) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func ensureTransition(from, to State) error {
	if !from.CanTransition(to) {
		return domain.NewInvalidTransitionError(from.String(), to.String())
	}
	return nil
}
