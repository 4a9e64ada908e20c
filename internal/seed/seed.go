package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/maintenance"
	"github.com/GoShareDrive/GoShareDrive/internal/rental"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
	"gorm.io/gorm"
)

// Run 清空并重建演示数据。先删子表再删父表，避免外键约束冲突。
func Run(ctx context.Context, db *gorm.DB, log logger.Logger) error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}
	log.Infof("start seeding database")

	if err := wipe(ctx, db); err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	log.Infof("old data cleared")

	tx := db.WithContext(ctx)

	statuses := map[string]*car.CarStatus{}
	for _, name := range []string{car.StatusAvailable, car.StatusRented, car.StatusMaintenance} {
		s := &car.CarStatus{StatusName: name}
		if err := tx.Create(s).Error; err != nil {
			return fmt.Errorf("create status %s: %w", name, err)
		}
		statuses[name] = s
	}

	locations := []*car.CarLocation{
		{City: "Kyiv", Address: "Maidan Nezalezhnosti, 2"},
		{City: "Kyiv", Address: "Vokzalna Sq, 1"},
		{City: "Kyiv", Address: "Sahaidachnoho St, 10"},
		{City: "Lviv", Address: "Rynok Sq, 1"},
		{City: "Lviv", Address: "Dvirtseva Sq, 1"},
	}
	for _, l := range locations {
		if err := tx.Create(l).Error; err != nil {
			return fmt.Errorf("create location: %w", err)
		}
	}

	models := []*car.CarModel{
		{Brand: "Toyota", ModelName: "Camry"},
		{Brand: "BMW", ModelName: "X5"},
		{Brand: "Renault", ModelName: "Logan"},
		{Brand: "Hyundai", ModelName: "Sonata"},
		{Brand: "Tesla", ModelName: "Model 3"},
	}
	for _, mdl := range models {
		if err := tx.Create(mdl).Error; err != nil {
			return fmt.Errorf("create model: %w", err)
		}
	}

	users := []*user.User{
		{Name: "Oleksandr Kovalenko", Email: "o.kovalenko@example.com", PhoneNumber: "+380501112233", DriverLicenseNumber: "BXT100001"},
		{Name: "Iryna Shevchenko", Email: "i.shevchenko@example.com", PhoneNumber: "+380672223344", DriverLicenseNumber: "BXT100002"},
		{Name: "Andrii Melnyk", Email: "a.melnyk@example.com", PhoneNumber: "+380633334455", DriverLicenseNumber: "BXT100003"},
		{Name: "Kateryna Boiko", Email: "k.boyko@example.com", PhoneNumber: "+380994445566", DriverLicenseNumber: "BXT100004"},
		{Name: "Dmytro Bondar", Email: "d.bondar@example.com", PhoneNumber: "+380935556677", DriverLicenseNumber: "BXT100005"},
		{Name: "Olena Tkachenko", Email: "o.tkachenko@example.com", PhoneNumber: "+380976667788", DriverLicenseNumber: "BXT100006"},
		{Name: "Serhii Kravchuk", Email: "s.kravchuk@example.com", PhoneNumber: "+380507778899", DriverLicenseNumber: "BXT100007"},
	}
	for _, u := range users {
		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
	}

	type carSpec struct {
		plate  string
		year   int
		price  float64
		model  *car.CarModel
		loc    *car.CarLocation
		status *car.CarStatus
	}
	carSpecs := []carSpec{
		{"AA1111KA", 2022, 15.00, models[2], locations[0], statuses[car.StatusAvailable]},
		{"AA2222KA", 2023, 25.00, models[0], locations[1], statuses[car.StatusRented]},
		{"AA3333KA", 2021, 40.00, models[1], locations[2], statuses[car.StatusAvailable]},
		{"AA4444KA", 2023, 12.00, models[2], locations[0], statuses[car.StatusMaintenance]},
		{"AA5555KA", 2024, 50.00, models[4], locations[2], statuses[car.StatusAvailable]},
		{"BC1111HA", 2020, 14.00, models[2], locations[3], statuses[car.StatusAvailable]},
		{"BC2222HA", 2022, 20.00, models[3], locations[4], statuses[car.StatusRented]},
		{"BC3333HA", 2023, 22.00, models[3], locations[3], statuses[car.StatusAvailable]},
		{"BC4444HA", 2019, 35.00, models[1], locations[4], statuses[car.StatusAvailable]},
		{"BC5555HA", 2024, 26.00, models[0], locations[3], statuses[car.StatusAvailable]},
	}
	cars := make([]*car.Car, 0, len(carSpecs))
	for _, cs := range carSpecs {
		c := &car.Car{
			LicensePlate: cs.plate,
			Year:         cs.year,
			PricePerHour: cs.price,
			ModelID:      cs.model.ID,
			LocationID:   cs.loc.ID,
			StatusID:     cs.status.ID,
		}
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("create car %s: %w", cs.plate, err)
		}
		cars = append(cars, c)
	}

	if err := tx.Create(&maintenance.MaintenanceLog{
		CarID:       cars[3].ID,
		Description: "Oil change and brake diagnostics",
		Cost:        1500.00,
	}).Error; err != nil {
		return fmt.Errorf("create maintenance log: %w", err)
	}

	// 两条已完成的历史租赁（含支付与评价），加一条进行中的租赁
	finished := []struct {
		userIdx, carIdx int
		start, end      string
		cost            float64
		method          string
	}{
		{0, 0, "2023-11-01T10:00:00Z", "2023-11-01T15:00:00Z", 75.00, "Credit Card"},
		{1, 4, "2023-11-05T12:00:00Z", "2023-11-05T14:00:00Z", 100.00, "Apple Pay"},
	}
	for _, f := range finished {
		start, _ := time.Parse(time.RFC3339, f.start)
		end, _ := time.Parse(time.RFC3339, f.end)
		cost := f.cost
		r := &rental.Rental{
			UserID:    users[f.userIdx].ID,
			CarID:     cars[f.carIdx].ID,
			Status:    rental.StatusFinished,
			StartTime: start,
			EndTime:   &end,
			TotalCost: &cost,
		}
		if err := tx.Create(r).Error; err != nil {
			return fmt.Errorf("create rental: %w", err)
		}
		if err := tx.Create(&rental.Payment{
			RentID:        r.ID,
			Amount:        cost,
			PaymentMethod: f.method,
			Status:        rental.PaymentStatusSuccess,
			Reference:     fmt.Sprintf("seed-%d", r.ID),
		}).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
	}

	if err := tx.Create(&maintenance.Review{
		UserID:  users[0].ID,
		CarID:   cars[0].ID,
		Rating:  5,
		Comment: "Clean and economical car, recommended.",
	}).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}

	// 与 Rented 状态对应的进行中租赁
	for _, active := range []struct{ userIdx, carIdx int }{{2, 1}, {4, 6}} {
		r := &rental.Rental{
			UserID:    users[active.userIdx].ID,
			CarID:     cars[active.carIdx].ID,
			Status:    rental.StatusActive,
			StartTime: time.Now().Add(-30 * time.Minute),
		}
		if err := tx.Create(r).Error; err != nil {
			return fmt.Errorf("create active rental: %w", err)
		}
	}

	log.Infof("seeding finished: users=%d cars=%d", len(users), len(cars))
	return nil
}

// wipe 子表先删；软删除行也要清理，所以统一 Unscoped。
func wipe(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	tables := []interface{}{
		&rental.Payment{},
		&maintenance.Review{},
		&maintenance.MaintenanceLog{},
		&rental.Rental{},
		&car.Car{},
		&car.CarModel{},
		&car.CarStatus{},
		&car.CarLocation{},
		&user.User{},
	}
	for _, table := range tables {
		if err := tx.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}
