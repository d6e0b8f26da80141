package listing

import (
	"errors"
	"fmt"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrMediaRefIsNotConstructed is returned when a MediaRef was created
// without the listing's factory.
var ErrMediaRefIsNotConstructed = errors.New(
	"media ref is not constructed, use listing.Listing to attach media")

// MediaRole tells what a referenced asset is used for on the listing.
type MediaRole int

const (
	// MediaRoleUnknown represents an invalid or undefined role.
	MediaRoleUnknown MediaRole = iota

	// Gallery is an ordinary gallery photograph.
	Gallery

	// FloorplanImage is a floor plan rendering.
	FloorplanImage

	// VideoTour is a video walkthrough.
	VideoTour

	// VirtualTour is a 360-degree virtual tour.
	VirtualTour
)

func getMediaRoleStrings() map[MediaRole]string {
	return map[MediaRole]string{
		MediaRoleUnknown: "Unknown",
		Gallery:          "Gallery",
		FloorplanImage:   "Floorplan",
		VideoTour:        "VideoTour",
		VirtualTour:      "VirtualTour",
	}
}

// Validate checks if the MediaRole value is valid.
func (r MediaRole) Validate() error {
	if r <= MediaRoleUnknown || r > VirtualTour {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid media role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r MediaRole) String() string {
	if str, ok := getMediaRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// MediaRef points a listing at one processed asset. Sort order is unique
// within the listing; at most one ref carries the cover flag.
type MediaRef struct {
	id           kernel.UUID
	mediaAssetID kernel.UUID
	role         MediaRole
	sortOrder    int
	isCover      bool
	isVisible    bool

	guard guard.ConstructorGuard
}

// newMediaRef constructs a reference. Only the owning listing calls this.
func newMediaRef(id, mediaAssetID kernel.UUID, role MediaRole, sortOrder int) (*MediaRef, error) {
	ref := &MediaRef{
		sortOrder: sortOrder,
		isVisible: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ref.setID(id),
		ref.setMediaAssetID(mediaAssetID),
		ref.setRole(role),
	); err != nil {
		return nil, err
	}

	return ref, nil
}

// RestoreMediaRef reconstructs a reference from persistence.
func RestoreMediaRef(
	id, mediaAssetID kernel.UUID,
	role MediaRole,
	sortOrder int,
	isCover, isVisible bool,
) (*MediaRef, error) {
	ref, err := newMediaRef(id, mediaAssetID, role, sortOrder)
	if err != nil {
		return nil, err
	}
	ref.isCover = isCover
	ref.isVisible = isVisible
	return ref, nil
}

// Validate ensures the MediaRef was created through the owning aggregate.
func (r *MediaRef) Validate() error {
	return r.guard.Validate(ErrMediaRefIsNotConstructed)
}

// ID returns the reference identifier.
func (r *MediaRef) ID() kernel.UUID { return r.id }

// MediaAssetID returns the referenced asset.
func (r *MediaRef) MediaAssetID() kernel.UUID { return r.mediaAssetID }

// Role returns what the asset is used for.
func (r *MediaRef) Role() MediaRole { return r.role }

// SortOrder returns the display position within the listing.
func (r *MediaRef) SortOrder() int { return r.sortOrder }

// IsCover reports whether the asset is the listing's cover image.
func (r *MediaRef) IsCover() bool { return r.isCover }

// IsVisible reports whether the asset is shown publicly.
func (r *MediaRef) IsVisible() bool { return r.isVisible }

func (r *MediaRef) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *MediaRef) setMediaAssetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.mediaAssetID = id
	return nil
}

func (r *MediaRef) setRole(role MediaRole) error {
	if err := role.Validate(); err != nil {
		return err
	}
	r.role = role
	return nil
}
