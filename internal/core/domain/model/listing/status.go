package listing

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// Status represents the market state of a listing.
//
// State transitions:
//
//	Draft ──> Active ──> Pending ──┬──> Sold
//	            │          │       └──> Rented
//	            │          └──> Active (deal fell through)
//	            └──────────────┬──> Sold
//	                           └──> Rented
//
// Archive is reachable from every status and is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Draft is the initial status while the agency prepares the listing.
	Draft

	// Active indicates the listing is on the market.
	Active

	// Pending indicates an offer was accepted and the deal is settling.
	Pending

	// Sold indicates the property sold.
	Sold

	// Rented indicates the property was leased.
	Rented

	// Archived indicates the listing was withdrawn from circulation.
	Archived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Draft:         "Draft",
		Active:        "Active",
		Pending:       "Pending",
		Sold:          "Sold",
		Rented:        "Rented",
		Archived:      "Archived",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > Archived {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid listing status", s))
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

// Activate transitions the status to Active. Valid from Draft, or from
// Pending when the deal falls through.
func (s Status) Activate() (Status, error) {
	if s != Draft && s != Pending {
		return 0, errs.NewInvalidOperationErrorWithCause("activate",
			fmt.Errorf("%s cannot go on the market", s.String()))
	}
	return Active, nil
}

// MarkPending transitions the status to Pending. Valid only from Active.
func (s Status) MarkPending() (Status, error) {
	if s != Active {
		return 0, errs.NewInvalidOperationErrorWithCause("mark pending",
			fmt.Errorf("%s is not on the market", s.String()))
	}
	return Pending, nil
}

// MarkSold transitions the status to Sold. Valid from Active or Pending.
func (s Status) MarkSold() (Status, error) {
	if s != Active && s != Pending {
		return 0, errs.NewInvalidOperationErrorWithCause("mark sold",
			fmt.Errorf("%s cannot settle", s.String()))
	}
	return Sold, nil
}

// MarkRented transitions the status to Rented. Valid from Active or Pending.
func (s Status) MarkRented() (Status, error) {
	if s != Active && s != Pending {
		return 0, errs.NewInvalidOperationErrorWithCause("mark rented",
			fmt.Errorf("%s cannot settle", s.String()))
	}
	return Rented, nil
}

// Archive transitions the status to Archived from any other status.
func (s Status) Archive() (Status, error) {
	if s == Archived {
		return 0, errs.NewInvalidOperationErrorWithCause("archive",
			fmt.Errorf("listing is already archived"))
	}
	return Archived, nil
}
