package interfaces

import (
	"context"

	"temple_seva/internal/domain/entities"
)

// Reference-entity repositories used by the completion side-effect dispatcher
// and the refund eligibility evaluator. Each UpdateStatus targets exactly one
// row and returns the zero value when the row does not exist.

type IBookingRepository interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}

type IStoreOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.StoreOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.StoreOrderStatus) (entities.StoreOrder, error)
}

type IEventRegistrationRepository interface {
	GetByID(ctx context.Context, id string) (entities.EventRegistration, error)
	UpdateStatus(ctx context.Context, id string, status entities.EventRegistrationStatus) (entities.EventRegistration, error)
}
