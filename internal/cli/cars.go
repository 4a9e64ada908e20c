package cli

import (
	"context"
	"strings"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
)

func (m *Menu) carMenu(ctx context.Context) {
	for {
		m.printf("\n--- CAR MANAGEMENT ---\n")
		m.printf("1. Show All Active Cars\n")
		m.printf("2. Add New Car\n")
		m.printf("3. Update Car Details\n")
		m.printf("4. Delete Car (Soft)\n")
		m.printf("5. Trash Bin (Restore)\n")
		m.printf("6. Search Cars\n")
		m.printf("7. Maintenance & Reviews\n")
		m.printf("8. Back to Main Menu\n")

		answer, err := m.prompt.Ask("Select action (1-8): ")
		if err != nil {
			return
		}

		switch answer {
		case "1":
			m.listCars(ctx)
		case "2":
			m.createCar(ctx)
		case "3":
			m.updateCar(ctx)
		case "4":
			m.deleteCar(ctx)
		case "5":
			m.trashBin(ctx)
		case "6":
			m.searchCars(ctx)
		case "7":
			m.maintenanceMenu(ctx)
		case "8":
			return
		default:
			m.printf("Unknown command.\n")
		}
	}
}

func (m *Menu) listCars(ctx context.Context) {
	cars, err := m.cars.ListActiveCars(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Total active cars: %d\n", len(cars))
	for _, c := range cars {
		m.printf("%s\n", c.Summary())
	}
}

func (m *Menu) createCar(ctx context.Context) {
	m.printf("\nAdd New Car (Type 'cancel' to go back)\n")

	brand, err := m.prompt.AskField("Brand: ")
	if err != nil {
		m.fail(err)
		return
	}
	modelName, err := m.prompt.AskField("Model: ")
	if err != nil {
		m.fail(err)
		return
	}
	yearStr, err := m.prompt.AskField("Year: ")
	if err != nil {
		m.fail(err)
		return
	}
	priceStr, err := m.prompt.AskField("Price/Hour: ")
	if err != nil {
		m.fail(err)
		return
	}
	plate, err := m.prompt.AskField("Plate: ")
	if err != nil {
		m.fail(err)
		return
	}
	city, err := m.prompt.AskField("City: ")
	if err != nil {
		m.fail(err)
		return
	}
	address, err := m.prompt.AskField("Address: ")
	if err != nil {
		m.fail(err)
		return
	}

	// 数字字段在触库之前完成校验
	year, err := ParseOptionalInt(yearStr)
	if err != nil || year == 0 {
		m.printf("[ERROR] Invalid year.\n")
		return
	}
	price, err := ParseOptionalFloat(priceStr)
	if err != nil || price <= 0 {
		m.printf("[ERROR] Invalid price.\n")
		return
	}

	c, err := m.cars.CreateCar(ctx, car.CreateCarInput{
		Brand:        brand,
		ModelName:    modelName,
		Year:         year,
		PricePerHour: price,
		LicensePlate: plate,
		City:         city,
		Address:      address,
	})
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Car added. ID: %d\n", c.ID)
}

func (m *Menu) updateCar(ctx context.Context) {
	m.printf("\nUpdate Car (Type 'cancel' to go back, Enter to skip field)\n")

	id, err := m.prompt.AskID("Enter Car ID to update: ")
	if err != nil {
		m.fail(err)
		return
	}

	brand, err := m.prompt.AskField("New Brand: ")
	if err != nil {
		m.fail(err)
		return
	}
	modelName, err := m.prompt.AskField("New Model: ")
	if err != nil {
		m.fail(err)
		return
	}
	yearStr, err := m.prompt.AskField("New Year: ")
	if err != nil {
		m.fail(err)
		return
	}
	priceStr, err := m.prompt.AskField("New Price/Hour: ")
	if err != nil {
		m.fail(err)
		return
	}
	plate, err := m.prompt.AskField("New Plate: ")
	if err != nil {
		m.fail(err)
		return
	}
	city, err := m.prompt.AskField("New City: ")
	if err != nil {
		m.fail(err)
		return
	}
	address, err := m.prompt.AskField("New Address: ")
	if err != nil {
		m.fail(err)
		return
	}
	status, err := m.prompt.AskField("New Status (Available/Maintenance): ")
	if err != nil {
		m.fail(err)
		return
	}

	year, err := ParseOptionalInt(yearStr)
	if err != nil {
		m.printf("[ERROR] Invalid year.\n")
		return
	}
	price, err := ParseOptionalFloat(priceStr)
	if err != nil {
		m.printf("[ERROR] Invalid price.\n")
		return
	}

	c, err := m.cars.UpdateCar(ctx, id, car.UpdateCarInput{
		Brand:        brand,
		ModelName:    modelName,
		Year:         year,
		PricePerHour: price,
		LicensePlate: plate,
		City:         city,
		Address:      address,
		StatusName:   status,
	})
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Car %d updated.\n", c.ID)
}

func (m *Menu) deleteCar(ctx context.Context) {
	m.printf("\nDelete Car (Soft)\n")

	id, err := m.prompt.AskID("Enter Car ID: ")
	if err != nil {
		m.fail(err)
		return
	}

	confirm, err := m.prompt.Ask("Are you sure? (yes/no): ")
	if err != nil || !isYes(confirm) {
		m.printf("Operation cancelled.\n")
		return
	}

	if err := m.cars.DeleteCar(ctx, id); err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] Car %d moved to trash.\n", id)
}

func (m *Menu) trashBin(ctx context.Context) {
	for {
		m.printf("\nTRASH BIN\n")
		m.printf("1. Show Deleted Cars\n")
		m.printf("2. Restore Car\n")
		m.printf("3. Back\n")

		answer, err := m.prompt.Ask("Select action (1-3): ")
		if err != nil {
			return
		}

		switch answer {
		case "1":
			cars, err := m.cars.ListDeletedCars(ctx)
			if err != nil {
				m.fail(err)
				break
			}
			m.printf("Total deleted cars: %d\n", len(cars))
			for _, c := range cars {
				m.printf("%s\n", c.Summary())
			}
		case "2":
			id, err := m.prompt.AskID("Enter Car ID to RESTORE: ")
			if err != nil {
				m.fail(err)
				break
			}
			if err := m.cars.RestoreCar(ctx, id); err != nil {
				m.fail(err)
				break
			}
			m.printf("[SUCCESS] Car %d restored.\n", id)
		case "3":
			return
		default:
			m.printf("Unknown command.\n")
		}
	}
}

func (m *Menu) searchCars(ctx context.Context) {
	m.printf("\nSMART SEARCH\n")
	m.printf("Type any keyword (Brand, Model, Plate, City) OR press Enter to see all.\n")

	query, err := m.prompt.Ask("Search Query: ")
	if err != nil {
		return
	}

	page := 1
	for {
		result, err := m.cars.SearchCars(ctx, query, page, m.pageSize)
		if err != nil {
			m.fail(err)
			return
		}

		m.printf("\nFound %d car(s), page %d of %d:\n", result.TotalCount, result.Page, result.TotalPages)
		for _, c := range result.Cars {
			m.printf("%s\n", c.Summary())
		}

		m.printf("\n[Navigation]:\n")
		if page < result.TotalPages {
			m.printf(" > type 'n' for Next Page\n")
		}
		if page > 1 {
			m.printf(" > type 'p' for Previous Page\n")
		}
		m.printf(" > type 'x' to Exit search\n")

		nav, err := m.prompt.Ask("Action: ")
		if err != nil {
			return
		}
		nav = strings.ToLower(nav)
		switch {
		case nav == "n" && page < result.TotalPages:
			page++
		case nav == "p" && page > 1:
			page--
		case nav == "x":
			return
		default:
			m.printf("Invalid navigation command or End of List.\n")
		}
	}
}
