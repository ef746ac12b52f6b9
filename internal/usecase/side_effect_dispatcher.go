package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"temple_seva/internal/domain/entities"
	"temple_seva/internal/usecase/interfaces"
)

var ErrUnknownSideEffect = errors.New("no side effect for payment type")

// SideEffectDispatcher mutates the entity a completed payment paid for.
//
// Mapping by payment type:
//   - booking            -> booking status confirmed
//   - store_order        -> store order status paid
//   - event_registration -> registration status confirmed
//   - donation           -> no-op (no reference entity to mutate)
//
// Each branch updates exactly one row by reference id. Updates are idempotent:
// re-confirming a confirmed entity rewrites the same status.

type SideEffectDispatcher struct {
	bookings      interfaces.IBookingRepository
	storeOrders   interfaces.IStoreOrderRepository
	registrations interfaces.IEventRegistrationRepository
}

func NewSideEffectDispatcher(bookings interfaces.IBookingRepository, storeOrders interfaces.IStoreOrderRepository, registrations interfaces.IEventRegistrationRepository) *SideEffectDispatcher {
	return &SideEffectDispatcher{bookings: bookings, storeOrders: storeOrders, registrations: registrations}
}

func (d *SideEffectDispatcher) Dispatch(ctx context.Context, tx entities.PaymentTransaction) error {
	switch tx.PaymentType {
	case entities.PaymentTypeBooking:
		updated, err := d.bookings.UpdateStatus(ctx, tx.ReferenceID, entities.BookingStatusConfirmed)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return fmt.Errorf("booking %s not found", tx.ReferenceID)
		}
		log.Printf("[dispatch][usecase] booking confirmed booking_id=%s order_id=%s", updated.ID, tx.OrderID)
		return nil

	case entities.PaymentTypeStoreOrder:
		updated, err := d.storeOrders.UpdateStatus(ctx, tx.ReferenceID, entities.StoreOrderStatusPaid)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return fmt.Errorf("store order %s not found", tx.ReferenceID)
		}
		log.Printf("[dispatch][usecase] store order paid store_order_id=%s order_id=%s", updated.ID, tx.OrderID)
		return nil

	case entities.PaymentTypeEventRegistration:
		updated, err := d.registrations.UpdateStatus(ctx, tx.ReferenceID, entities.EventRegistrationStatusConfirmed)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			return fmt.Errorf("event registration %s not found", tx.ReferenceID)
		}
		log.Printf("[dispatch][usecase] registration confirmed registration_id=%s order_id=%s", updated.ID, tx.OrderID)
		return nil

	case entities.PaymentTypeDonation:
		log.Printf("[dispatch][usecase] donation completed, no side effect order_id=%s", tx.OrderID)
		return nil

	default:
		return ErrUnknownSideEffect
	}
}
