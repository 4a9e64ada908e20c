package cli

import "context"

func (m *Menu) maintenanceMenu(ctx context.Context) {
	for {
		m.printf("\nMAINTENANCE & REVIEWS\n")
		m.printf("1. Add Maintenance Log\n")
		m.printf("2. Show Maintenance Logs\n")
		m.printf("3. Add Review\n")
		m.printf("4. Show Reviews\n")
		m.printf("5. Back\n")

		answer, err := m.prompt.Ask("Select action (1-5): ")
		if err != nil {
			return
		}

		switch answer {
		case "1":
			m.addMaintenanceLog(ctx)
		case "2":
			m.listMaintenanceLogs(ctx)
		case "3":
			m.addReview(ctx)
		case "4":
			m.listReviews(ctx)
		case "5":
			return
		default:
			m.printf("Unknown command.\n")
		}
	}
}

func (m *Menu) addMaintenanceLog(ctx context.Context) {
	m.printf("\nAdd Maintenance Log (Type 'cancel' to go back)\n")

	carID, err := m.prompt.AskID("Car ID: ")
	if err != nil {
		m.fail(err)
		return
	}
	description, err := m.prompt.AskField("Description: ")
	if err != nil {
		m.fail(err)
		return
	}
	costStr, err := m.prompt.AskField("Cost: ")
	if err != nil {
		m.fail(err)
		return
	}
	cost, err := ParseOptionalFloat(costStr)
	if err != nil || cost < 0 {
		m.printf("[ERROR] Invalid cost.\n")
		return
	}

	entry, err := m.maint.AddLog(ctx, carID, description, cost)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Maintenance log added. ID: %d\n", entry.ID)
}

func (m *Menu) listMaintenanceLogs(ctx context.Context) {
	carID, err := m.prompt.AskID("Car ID: ")
	if err != nil {
		m.fail(err)
		return
	}
	logs, err := m.maint.LogsByCar(ctx, carID)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Maintenance logs: %d\n", len(logs))
	for _, entry := range logs {
		m.printf("%s\n", entry.Summary())
	}
}

func (m *Menu) addReview(ctx context.Context) {
	m.printf("\nAdd Review (Type 'cancel' to go back)\n")

	userID, err := m.prompt.AskID("User ID: ")
	if err != nil {
		m.fail(err)
		return
	}
	carID, err := m.prompt.AskID("Car ID: ")
	if err != nil {
		m.fail(err)
		return
	}
	ratingStr, err := m.prompt.AskField("Rating (1-5): ")
	if err != nil {
		m.fail(err)
		return
	}
	rating, err := ParseOptionalInt(ratingStr)
	if err != nil {
		m.printf("[ERROR] Invalid rating.\n")
		return
	}
	comment, err := m.prompt.AskField("Comment: ")
	if err != nil {
		m.fail(err)
		return
	}

	rv, err := m.maint.AddReview(ctx, userID, carID, rating, comment)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Review added. ID: %d\n", rv.ID)
}

func (m *Menu) listReviews(ctx context.Context) {
	carID, err := m.prompt.AskID("Car ID: ")
	if err != nil {
		m.fail(err)
		return
	}
	reviews, err := m.maint.ReviewsByCar(ctx, carID)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Reviews: %d\n", len(reviews))
	for _, rv := range reviews {
		m.printf("%s\n", rv.Summary())
	}
}
