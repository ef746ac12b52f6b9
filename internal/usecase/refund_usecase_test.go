package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"temple_seva/internal/domain/entities"
	mock_interfaces "temple_seva/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type refundFixture struct {
	repo          *mock_interfaces.MockIPaymentTransactionRepository
	bookings      *mock_interfaces.MockIBookingRepository
	registrations *mock_interfaces.MockIEventRegistrationRepository
	uc            *RefundUseCase
}

func newRefundFixture(t *testing.T) refundFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
	bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
	registrations := mock_interfaces.NewMockIEventRegistrationRepository(ctrl)

	return refundFixture{
		repo:          repo,
		bookings:      bookings,
		registrations: registrations,
		uc:            NewRefundUseCase(repo, bookings, registrations),
	}
}

func completedTx(paymentType entities.PaymentType, referenceID string) entities.PaymentTransaction {
	return entities.PaymentTransaction{
		OrderID:     "ORDER_1",
		UserID:      "user-1",
		PaymentType: paymentType,
		ReferenceID: referenceID,
		Status:      entities.PaymentStatusCompleted,
		CreatedAt:   time.Now().UTC().Add(-1 * time.Hour),
	}
}

func TestRefundUseCase_RequestRefund_Gates(t *testing.T) {
	t.Run("empty reason", func(t *testing.T) {
		f := newRefundFixture(t)
		_, err := f.uc.RequestRefund(context.Background(), "user-1", "ORDER_1", "  ")
		if !errors.Is(err, ErrInvalidRefundReason) {
			t.Fatalf("expected ErrInvalidRefundReason, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		f := newRefundFixture(t)
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "ORDER_404").Return(entities.PaymentTransaction{}, nil)

		_, err := f.uc.RequestRefund(context.Background(), "user-1", "ORDER_404", "changed plans")
		if !errors.Is(err, ErrPaymentOrderNotFound) {
			t.Fatalf("expected ErrPaymentOrderNotFound, got %v", err)
		}
	})

	t.Run("owned by another user reads as not found", func(t *testing.T) {
		f := newRefundFixture(t)
		tx := completedTx(entities.PaymentTypeBooking, "bk-1")
		tx.UserID = "user-2"
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "ORDER_1").Return(tx, nil)

		_, err := f.uc.RequestRefund(context.Background(), "user-1", "ORDER_1", "changed plans")
		if !errors.Is(err, ErrPaymentOrderNotFound) {
			t.Fatalf("expected ErrPaymentOrderNotFound, got %v", err)
		}
	})

	t.Run("not completed", func(t *testing.T) {
		f := newRefundFixture(t)
		tx := completedTx(entities.PaymentTypeBooking, "bk-1")
		tx.Status = entities.PaymentStatusPending
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "ORDER_1").Return(tx, nil)

		_, err := f.uc.RequestRefund(context.Background(), "user-1", "ORDER_1", "changed plans")
		if !errors.Is(err, ErrRefundNotCompleted) {
			t.Fatalf("expected ErrRefundNotCompleted, got %v", err)
		}
	})
}

func TestRefundUseCase_Policy(t *testing.T) {
	t.Run("donation always denied", func(t *testing.T) {
		f := newRefundFixture(t)
		f.repo.EXPECT().GetByOrderID(gomock.Any(), "ORDER_1").
			Return(completedTx(entities.PaymentTypeDonation, "temple-1"), nil)

		_, err := f.uc.RequestRefund(context.Background(), "user-1", "ORDER_1", "changed plans")
		var denied *RefundDeniedError
		if !errors.As(err, &denied) {
			t.Fatalf("expected RefundDeniedError, got %v", err)
		}
		if denied.Reason != "Donations are non-refundable" {
			t.Fatalf("unexpected reason: %q", denied.Reason)
		}
	})

	t.Run("past booking denied", func(t *testing.T) {
		f := newRefundFixture(t)
		f.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", ScheduledDate: time.Now().UTC().Add(-48 * time.Hour)}, nil)

		decision, err := f.uc.Evaluate(context.Background(), completedTx(entities.PaymentTypeBooking, "bk-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Allowed || decision.Reason != "Cannot refund past bookings" {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})

	t.Run("future booking allowed", func(t *testing.T) {
		f := newRefundFixture(t)
		f.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", ScheduledDate: time.Now().UTC().Add(72 * time.Hour)}, nil)

		decision, err := f.uc.Evaluate(context.Background(), completedTx(entities.PaymentTypeBooking, "bk-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !decision.Allowed {
			t.Fatalf("expected allowed, got %+v", decision)
		}
	})

	t.Run("booking reference missing", func(t *testing.T) {
		f := newRefundFixture(t)
		f.bookings.EXPECT().GetByID(gomock.Any(), "bk-404").Return(entities.Booking{}, nil)

		_, err := f.uc.Evaluate(context.Background(), completedTx(entities.PaymentTypeBooking, "bk-404"))
		if !errors.Is(err, ErrRefundReferenceNotFound) {
			t.Fatalf("expected ErrRefundReferenceNotFound, got %v", err)
		}
	})

	t.Run("past event denied", func(t *testing.T) {
		f := newRefundFixture(t)
		f.registrations.EXPECT().GetByID(gomock.Any(), "reg-1").
			Return(entities.EventRegistration{ID: "reg-1", EventDate: time.Now().UTC().Add(-2 * time.Hour)}, nil)

		decision, err := f.uc.Evaluate(context.Background(), completedTx(entities.PaymentTypeEventRegistration, "reg-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Allowed || decision.Reason != "Cannot refund past events" {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})

	t.Run("store order inside 24h window allowed", func(t *testing.T) {
		f := newRefundFixture(t)
		tx := completedTx(entities.PaymentTypeStoreOrder, "so-1")
		tx.CreatedAt = time.Now().UTC().Add(-23 * time.Hour)

		decision, err := f.uc.Evaluate(context.Background(), tx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !decision.Allowed {
			t.Fatalf("expected allowed, got %+v", decision)
		}
	})

	t.Run("store order past 24h window denied", func(t *testing.T) {
		f := newRefundFixture(t)
		tx := completedTx(entities.PaymentTypeStoreOrder, "so-1")
		tx.CreatedAt = time.Now().UTC().Add(-25 * time.Hour)

		decision, err := f.uc.Evaluate(context.Background(), tx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Allowed || decision.Reason != "Refund window expired for store orders" {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})

	t.Run("unsupported payment type denied", func(t *testing.T) {
		f := newRefundFixture(t)
		tx := completedTx(entities.PaymentType("subscription"), "x")

		decision, err := f.uc.Evaluate(context.Background(), tx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if decision.Allowed || decision.Reason != "Refund not supported for this payment type" {
			t.Fatalf("unexpected decision: %+v", decision)
		}
	})
}

func TestRefundUseCase_RequestRefund_Success(t *testing.T) {
	f := newRefundFixture(t)
	tx := completedTx(entities.PaymentTypeBooking, "bk-1")
	tx.TransactionID = "pay_123"
	tx.GatewayResponse = map[string]interface{}{"id": "rzp_order_1"}

	f.repo.EXPECT().GetByOrderID(gomock.Any(), "ORDER_1").Return(tx, nil)
	f.bookings.EXPECT().GetByID(gomock.Any(), "bk-1").
		Return(entities.Booking{ID: "bk-1", ScheduledDate: time.Now().UTC().Add(24 * time.Hour)}, nil)

	var payload json.RawMessage
	f.repo.EXPECT().
		UpdateStatus(gomock.Any(), "ORDER_1", entities.PaymentStatusRefundRequested, "pay_123", gomock.Any()).
		DoAndReturn(func(_ context.Context, orderID string, status entities.PaymentStatus, transactionID string, gatewayResponse json.RawMessage) (entities.PaymentTransaction, error) {
			payload = gatewayResponse
			updated := tx
			updated.Status = status
			return updated, nil
		})

	updated, err := f.uc.RequestRefund(context.Background(), "user-1", "ORDER_1", "date clash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entities.PaymentStatusRefundRequested {
		t.Fatalf("expected refund_requested, got %s", updated.Status)
	}

	var stored map[string]interface{}
	if err := json.Unmarshal(payload, &stored); err != nil {
		t.Fatalf("stored payload is not json: %v", err)
	}
	if stored["refund_reason"] != "date clash" {
		t.Fatalf("expected refund_reason in payload, got %v", stored)
	}
	if stored["id"] != "rzp_order_1" {
		t.Fatalf("expected prior gateway fields preserved, got %v", stored)
	}
}
