package order

import (
	"fmt"
	"strings"

	"shootdesk/internal/pkg/errs"
)

// TaskTypes is a combinable set of shoot work kinds. A single task can cover
// several kinds at once, for example photography plus drone footage in one
// visit. The set supports explicit union/intersection/contains operations
// rather than exposing raw integer flags.
type TaskTypes uint8

const (
	// TaskPhotography covers still photography.
	TaskPhotography TaskTypes = 1 << iota
	// TaskVideo covers walkthrough or cinematic video.
	TaskVideo
	// TaskFloorplan covers 2D/3D floorplan capture.
	TaskFloorplan
	// TaskVR360 covers 360-degree virtual tour capture.
	TaskVR360
	// TaskDrone covers aerial photography and video.
	TaskDrone
	// TaskOther covers anything not in the standard catalogue.
	TaskOther
)

// allTaskTypes is the union of every defined kind.
const allTaskTypes = TaskPhotography | TaskVideo | TaskFloorplan | TaskVR360 | TaskDrone | TaskOther

func taskTypeNames() []struct {
	t    TaskTypes
	name string
} {
	return []struct {
		t    TaskTypes
		name string
	}{
		{TaskPhotography, "Photography"},
		{TaskVideo, "Video"},
		{TaskFloorplan, "Floorplan"},
		{TaskVR360, "VR360"},
		{TaskDrone, "Drone"},
		{TaskOther, "Other"},
	}
}

// NewTaskTypes builds a set from the given kinds.
func NewTaskTypes(kinds ...TaskTypes) TaskTypes {
	var set TaskTypes
	for _, k := range kinds {
		set |= k
	}
	return set
}

// Validate checks the set is non-empty and contains no undefined bits.
func (t TaskTypes) Validate() error {
	if t == 0 {
		return errs.NewValueIsRequiredError("task type")
	}
	if t&^allTaskTypes != 0 {
		return errs.NewValueIsInvalidErrorWithCause("task type",
			fmt.Errorf("%d contains undefined kinds", t))
	}
	return nil
}

// Contains reports whether every kind in other is present in the set.
func (t TaskTypes) Contains(other TaskTypes) bool {
	return other != 0 && t&other == other
}

// Union returns the set combined with other.
func (t TaskTypes) Union(other TaskTypes) TaskTypes {
	return t | other
}

// Intersect returns the kinds present in both sets.
func (t TaskTypes) Intersect(other TaskTypes) TaskTypes {
	return t & other
}

// IsEmpty reports whether the set holds no kinds.
func (t TaskTypes) IsEmpty() bool {
	return t == 0
}

// String returns the kind names joined with "+", or "None" for the empty set.
func (t TaskTypes) String() string {
	if t == 0 {
		return "None"
	}

	names := make([]string, 0, 6)
	for _, entry := range taskTypeNames() {
		if t.Contains(entry.t) {
			names = append(names, entry.name)
		}
	}
	if rest := t &^ allTaskTypes; rest != 0 {
		names = append(names, fmt.Sprintf("Undefined(%d)", rest))
	}
	return strings.Join(names, "+")
}
