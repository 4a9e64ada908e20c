package cli

import "context"

func (m *Menu) reportMenu(ctx context.Context) {
	for {
		m.printf("\nANALYTICS & REPORTS\n")
		m.printf("1. General Dashboard (Totals)\n")
		m.printf("2. Top Profitable Cars\n")
		m.printf("3. Top Active Clients\n")
		m.printf("4. Back to Main Menu\n")

		answer, err := m.prompt.Ask("Select report (1-4): ")
		if err != nil {
			return
		}

		switch answer {
		case "1":
			m.generalStats(ctx)
		case "2":
			m.topCars(ctx)
		case "3":
			m.topUsers(ctx)
		case "4":
			return
		default:
			m.printf("Unknown command.\n")
		}
	}
}

func (m *Menu) generalStats(ctx context.Context) {
	gs, err := m.stats.General(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("\nGENERAL DASHBOARD\n")
	m.printf(" Total Users:   %d\n", gs.TotalUsers)
	m.printf(" Active Cars:   %d\n", gs.ActiveCars)
	m.printf(" Total Rentals: %d\n", gs.TotalRentals)
	m.printf(" TOTAL REVENUE: $%.2f\n", gs.TotalRevenue)
}

func (m *Menu) topCars(ctx context.Context) {
	rows, err := m.stats.TopGrossingCars(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(rows) == 0 {
		m.printf("No data available for report.\n")
		return
	}
	m.printf("\nTOP %d PROFITABLE CARS\n", len(rows))
	for _, row := range rows {
		m.printf(" - %s %s (%s) | Revenue: $%.2f\n",
			row.Brand, row.ModelName, row.LicensePlate, row.Revenue)
	}
}

func (m *Menu) topUsers(ctx context.Context) {
	rows, err := m.stats.TopActiveUsers(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(rows) == 0 {
		m.printf("No data available.\n")
		return
	}
	m.printf("\nTOP %d ACTIVE CLIENTS\n", len(rows))
	for _, row := range rows {
		m.printf(" - %s (%s) | Rentals: %d\n", row.Name, row.Email, row.Rentals)
	}
}
