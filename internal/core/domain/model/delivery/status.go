package delivery

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery package.
//
// State transitions:
//
//	Draft ──> Published ──┬──> Expired
//	                      └──> Revoked
//
// Expired and Revoked are terminal. Draft permits item and access mutation;
// Published is read-only apart from download counting.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status while the studio assembles the package.
	Draft

	// Published indicates the package was released to its recipients.
	Published

	// Expired indicates the publication deadline elapsed.
	Expired

	// Revoked indicates the studio withdrew the package.
	Revoked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Published: "Published",
		Expired:   "Expired",
		Revoked:   "Revoked",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= Unknown || s > Revoked {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid package status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Expired || s == Revoked
}

// Publish transitions the status to Published. Valid only from Draft.
func (s Status) Publish() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidOperationErrorWithCause("publish",
			fmt.Errorf("%s is not a publishable status", s.String()))
	}
	return Published, nil
}

// Revoke transitions the status to Revoked. Valid only from Published.
func (s Status) Revoke() (Status, error) {
	if s != Published {
		return 0, errs.NewInvalidOperationErrorWithCause("revoke",
			fmt.Errorf("%s is not a revocable status", s.String()))
	}
	return Revoked, nil
}

// Expire transitions the status to Expired. Valid only from Published;
// the deadline check belongs to the aggregate, which knows the clock.
func (s Status) Expire() (Status, error) {
	if s != Published {
		return 0, errs.NewInvalidOperationErrorWithCause("expire",
			fmt.Errorf("%s is not an expirable status", s.String()))
	}
	return Expired, nil
}
