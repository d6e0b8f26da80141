package media

import (
	"fmt"

	"shootdesk/internal/pkg/errs"
)

// ResourceType classifies the kind of file an asset holds.
type ResourceType int

const (
	// ResourceTypeUnknown represents an invalid or undefined type.
	ResourceTypeUnknown ResourceType = iota

	// Image is a still photograph.
	Image

	// Video is a motion clip or walkthrough.
	Video

	// Floorplan is a rendered floor plan.
	Floorplan

	// Panorama is a 360-degree sphere for virtual tours.
	Panorama

	// Document is any other deliverable file.
	Document
)

func getResourceTypeStrings() map[ResourceType]string {
	return map[ResourceType]string{
		ResourceTypeUnknown: "Unknown",
		Image:               "Image",
		Video:               "Video",
		Floorplan:           "Floorplan",
		Panorama:            "Panorama",
		Document:            "Document",
	}
}

// Validate checks if the ResourceType value is valid.
func (t ResourceType) Validate() error {
	if t <= ResourceTypeUnknown || t > Document {
		return errs.NewValueIsInvalidErrorWithCause("resourceType is invalid",
			fmt.Errorf("%d is not a valid resource type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
func (t ResourceType) String() string {
	if str, ok := getResourceTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
