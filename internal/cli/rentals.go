package cli

import (
	"context"
	"errors"

	"github.com/GoShareDrive/GoShareDrive/internal/rental"
)

func (m *Menu) rentalMenu(ctx context.Context) {
	for {
		m.printf("\nRENTAL OPERATIONS\n")
		m.printf("1. Rent a Car (Start)\n")
		m.printf("2. Return Car (Finish)\n")
		m.printf("3. Cancel Rental\n")
		m.printf("4. Show Active Rentals\n")
		m.printf("5. Back to Main Menu\n")

		answer, err := m.prompt.Ask("Select action (1-5): ")
		if err != nil {
			return
		}

		switch answer {
		case "1":
			m.startRental(ctx)
		case "2":
			m.finishRental(ctx)
		case "3":
			m.cancelRental(ctx)
		case "4":
			m.listActiveRentals(ctx)
		case "5":
			return
		default:
			m.printf("Unknown command.\n")
		}
	}
}

func (m *Menu) startRental(ctx context.Context) {
	m.printf("\nNew Rental (Type 'cancel' to go back)\n")

	userID, err := m.prompt.AskID("Enter User ID: ")
	if err != nil {
		m.fail(err)
		return
	}
	carID, err := m.prompt.AskID("Enter Car ID: ")
	if err != nil {
		m.fail(err)
		return
	}

	rent, err := m.rentals.StartRental(ctx, userID, carID)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Rental started. Rental ID: %d\n", rent.ID)
}

func (m *Menu) finishRental(ctx context.Context) {
	m.printf("\nReturn Car (Type 'cancel' to go back)\n")

	m.listActiveRentals(ctx)

	rentID, err := m.prompt.AskID("Enter Rental ID to finish: ")
	if err != nil {
		m.fail(err)
		return
	}
	method, err := m.prompt.AskField("Payment method (Cash/Credit Card/...): ")
	if err != nil {
		m.fail(err)
		return
	}
	if method == "" {
		method = "Cash"
	}

	rent, err := m.rentals.FinishRental(ctx, rentID, method)
	if err != nil {
		// 已知缺口：租赁事务已提交但支付行缺失，如实上报
		if errors.Is(err, rental.ErrPaymentFailed) {
			m.printf("[WARNING] Rental %d finished (total $%.2f) but the payment was NOT recorded.\n",
				rent.ID, derefCost(rent))
			return
		}
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Car returned. Total cost: $%.2f\n", derefCost(rent))
}

func (m *Menu) cancelRental(ctx context.Context) {
	m.printf("\nCancel Rental (Type 'cancel' to go back)\n")

	rentID, err := m.prompt.AskID("Enter Rental ID to cancel: ")
	if err != nil {
		m.fail(err)
		return
	}

	confirm, err := m.prompt.Ask("Cancel without charge? (yes/no): ")
	if err != nil || !isYes(confirm) {
		m.printf("Operation cancelled.\n")
		return
	}

	rent, err := m.rentals.CancelRental(ctx, rentID)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Rental %d canceled, car is available again.\n", rent.ID)
}

func (m *Menu) listActiveRentals(ctx context.Context) {
	rentals, err := m.rentals.ActiveRentals(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Active rentals: %d\n", len(rentals))
	for _, r := range rentals {
		m.printf(" - RentID: %d | User: %s | Car: %s %s | Started: %s\n",
			r.ID, r.User.Name, r.Car.Model.Brand, r.Car.Model.ModelName,
			r.StartTime.Format("2006-01-02 15:04"))
	}
}

func derefCost(r *rental.Rental) float64 {
	if r == nil || r.TotalCost == nil {
		return 0
	}
	return *r.TotalCost
}
