// Package orderrepo maps shoot order aggregates to their database rows.
package orderrepo

import (
	"time"

	"shootdesk/internal/core/domain/model/kernel"
	"shootdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for a shoot order aggregate.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AgencyID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	StudioID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	ListingID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy          uuid.UUID  `gorm:"type:uuid;not null"`
	PhotographerID     *uuid.UUID `gorm:"type:uuid;index"`
	Currency           string     `gorm:"type:char(3);not null"`
	Status             int        `gorm:"type:int;not null;index"`
	CancellationReason string     `gorm:"type:varchar(500)"`
	Tasks              []TaskDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAtUtc time.Time
	UpdatedAtUtc time.Time
	DeletedAtUtc *time.Time `gorm:"index"`
	Version      int64      `gorm:"not null"`
}

// TableName overrides GORM's default to "shoot_orders".
func (OrderDTO) TableName() string {
	return "shoot_orders"
}

// TaskDTO is the database row for a task owned by a shoot order.
type TaskDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Types      int       `gorm:"type:int;not null"`
	Status     int       `gorm:"type:int;not null"`
	Notes      string    `gorm:"type:varchar(1000)"`
	PriceCents *int64
}

// TableName overrides GORM's default to "shoot_tasks".
func (TaskDTO) TableName() string {
	return "shoot_tasks"
}

// fromDomain converts a shoot order aggregate to its database row.
func fromDomain(aggregate *order.ShootOrder) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var photographerID *uuid.UUID
	if id := aggregate.Photographer(); id != nil {
		raw := id.Bytes()
		photographerID = &raw
	}

	tasks := make([]TaskDTO, 0, len(aggregate.Tasks()))
	for _, task := range aggregate.Tasks() {
		tasks = append(tasks, TaskDTO{
			ID:         task.ID().Bytes(),
			OrderID:    orderID,
			Types:      int(task.Types()),
			Status:     int(task.Status()),
			Notes:      task.Notes(),
			PriceCents: task.PriceCents(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		AgencyID:           aggregate.AgencyID().Bytes(),
		StudioID:           aggregate.StudioID().Bytes(),
		ListingID:          aggregate.ListingID().Bytes(),
		CreatedBy:          aggregate.CreatedBy().Bytes(),
		PhotographerID:     photographerID,
		Currency:           aggregate.Currency().Code(),
		Status:             int(aggregate.Status()),
		CancellationReason: aggregate.CancellationReason(),
		Tasks:              tasks,
		DeletedAtUtc:       aggregate.DeletedAt(),
	}
}

// toDomain rebuilds the shoot order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.ShootOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}
	studioID, err := kernel.UUIDFromBytes(dto.StudioID[:])
	if err != nil {
		return nil, err
	}
	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var photographerID *kernel.UUID
	if dto.PhotographerID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PhotographerID)[:])
		if pErr != nil {
			return nil, pErr
		}
		photographerID = &pID
	}

	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	tasks := make([]*order.Task, 0, len(dto.Tasks))
	for _, taskDto := range dto.Tasks {
		task, taskErr := taskToDomain(taskDto)
		if taskErr != nil {
			return nil, taskErr
		}
		tasks = append(tasks, task)
	}

	return order.RestoreShootOrder(
		id, agencyID, studioID, listingID, createdBy,
		currency,
		order.Status(dto.Status),
		photographerID,
		dto.CancellationReason,
		tasks,
		kernel.RestoreRemoval(dto.DeletedAtUtc),
	)
}

func taskToDomain(dto TaskDTO) (*order.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreTask(
		id,
		order.TaskTypes(dto.Types),
		order.TaskStatus(dto.Status),
		dto.Notes,
		dto.PriceCents,
	)
}
