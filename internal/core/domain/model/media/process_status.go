package media

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// ProcessStatus represents where an asset sits in the processing pipeline.
//
// State transitions:
//
//	Uploaded ──> Processing ──┬──> Ready
//	                          └──> Failed
//
// Ready and Failed are terminal.
type ProcessStatus int

const (
	// ProcessStatusUnknown represents an invalid or undefined status.
	ProcessStatusUnknown ProcessStatus = iota

	// Uploaded is the initial status after the raw file arrived.
	Uploaded

	// Processing indicates the pipeline is producing variants.
	Processing

	// Ready indicates all variants were produced successfully.
	Ready

	// Failed indicates processing gave up on the asset.
	Failed
)

func getProcessStatusStrings() map[ProcessStatus]string {
	return map[ProcessStatus]string{
		ProcessStatusUnknown: "Unknown",
		Uploaded:             "Uploaded",
		Processing:           "Processing",
		Ready:                "Ready",
		Failed:               "Failed",
	}
}

// Validate checks if the ProcessStatus value is valid.
func (s ProcessStatus) Validate() error {
	if s <= ProcessStatusUnknown || s > Failed {
		return errs.NewValueIsInvalidErrorWithCause("processStatus is invalid",
			fmt.Errorf("%d is not a valid process status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s ProcessStatus) String() string {
	if str, ok := getProcessStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s ProcessStatus) IsTerminal() bool {
	return s == Ready || s == Failed
}

// StartProcessing transitions the status to Processing. Valid only from
// Uploaded.
func (s ProcessStatus) StartProcessing() (ProcessStatus, error) {
	if s != Uploaded {
		return 0, errs.NewInvalidOperationErrorWithCause("start processing",
			fmt.Errorf("asset is %s, processing starts from Uploaded", s.String()))
	}
	return Processing, nil
}

// CompleteProcessing transitions the status to Ready. Valid only from
// Processing.
func (s ProcessStatus) CompleteProcessing() (ProcessStatus, error) {
	if s != Processing {
		return 0, errs.NewInvalidOperationErrorWithCause("complete processing",
			fmt.Errorf("asset is %s, completion requires Processing", s.String()))
	}
	return Ready, nil
}

// FailProcessing transitions the status to Failed. Valid only from
// Processing.
func (s ProcessStatus) FailProcessing() (ProcessStatus, error) {
	if s != Processing {
		return 0, errs.NewInvalidOperationErrorWithCause("fail processing",
			fmt.Errorf("asset is %s, failure requires Processing", s.String()))
	}
	return Failed, nil
}
