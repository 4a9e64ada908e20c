package rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
	"gorm.io/gorm"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}
func (l nopLogger) WithField(string, interface{}) logger.Logger { return l }

type fakeUsers struct {
	users map[uint]*user.User
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

type fakeCatalog struct {
	cars     map[uint]*car.Car
	statuses map[string]*car.CarStatus
}

func (f *fakeCatalog) FindByID(_ context.Context, id uint) (*car.Car, error) {
	c, ok := f.cars[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCatalog) FindStatusByName(_ context.Context, name string) (*car.CarStatus, error) {
	s, ok := f.statuses[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeCatalog) UpsertStatus(_ context.Context, name string) (*car.CarStatus, error) {
	if s, ok := f.statuses[name]; ok {
		return s, nil
	}
	s := &car.CarStatus{ID: uint(len(f.statuses) + 1), StatusName: name}
	f.statuses[name] = s
	return s, nil
}

// fakeStore 内存仓储：每次 *WithCarStatus 调用同时落租赁与车辆状态，
// 模拟生产实现的事务语义。
type fakeStore struct {
	catalog    *fakeCatalog
	rentals    map[uint]*Rental
	nextID     uint
	payments   []Payment
	paymentErr error
}

func (f *fakeStore) GetByIDWithCar(_ context.Context, id uint) (*Rental, error) {
	r, ok := f.rentals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	if c, ok := f.catalog.cars[r.CarID]; ok {
		cp.Car = *c
	}
	return &cp, nil
}

func (f *fakeStore) ListActive(_ context.Context) ([]Rental, error) {
	var out []Rental
	for _, r := range f.rentals {
		if r.Status == StatusActive {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeStore) CreatePayment(_ context.Context, p *Payment) error {
	if f.paymentErr != nil {
		return f.paymentErr
	}
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeStore) CreateWithCarStatus(_ context.Context, rent *Rental, carStatusID uint) error {
	f.nextID++
	rent.ID = f.nextID
	cp := *rent
	f.rentals[rent.ID] = &cp
	f.catalog.cars[rent.CarID].StatusID = carStatusID
	return nil
}

func (f *fakeStore) SaveWithCarStatus(_ context.Context, rent *Rental, carStatusID uint) error {
	cp := *rent
	f.rentals[rent.ID] = &cp
	f.catalog.cars[rent.CarID].StatusID = carStatusID
	return nil
}

const (
	availableID = 1
	rentedID    = 2
	testCarID   = 10
	testUserID  = 7
)

func newFixture() (*Service, *fakeStore, *fakeCatalog) {
	catalog := &fakeCatalog{
		cars: map[uint]*car.Car{
			testCarID: {ID: testCarID, StatusID: availableID, PricePerHour: 15, LicensePlate: "AA1234BB"},
		},
		statuses: map[string]*car.CarStatus{
			car.StatusAvailable: {ID: availableID, StatusName: car.StatusAvailable},
			car.StatusRented:    {ID: rentedID, StatusName: car.StatusRented},
		},
	}
	users := &fakeUsers{users: map[uint]*user.User{
		testUserID: {ID: testUserID, Name: "Olena Kovalenko"},
	}}
	store := &fakeStore{catalog: catalog, rentals: map[uint]*Rental{}}
	return NewService(store, users, catalog, nopLogger{}), store, catalog
}

func seedActiveRental(store *fakeStore, startedAgo time.Duration) uint {
	store.nextID++
	id := store.nextID
	store.rentals[id] = &Rental{
		ID:        id,
		UserID:    testUserID,
		CarID:     testCarID,
		Status:    StatusActive,
		StartTime: time.Now().Add(-startedAgo),
	}
	store.catalog.cars[testCarID].StatusID = rentedID
	return id
}

func TestStartRentalMarksCarRented(t *testing.T) {
	svc, store, catalog := newFixture()

	rent, err := svc.StartRental(context.Background(), testUserID, testCarID)
	if err != nil {
		t.Fatalf("StartRental: %v", err)
	}
	if rent.Status != StatusActive {
		t.Fatalf("rental status = %s, want %s", rent.Status, StatusActive)
	}
	if got := catalog.cars[testCarID].StatusID; got != rentedID {
		t.Fatalf("car status id = %d, want %d (Rented)", got, rentedID)
	}
	if len(store.rentals) != 1 {
		t.Fatalf("expected 1 stored rental, got %d", len(store.rentals))
	}
}

func TestStartRentalRejectsCarAlreadyRented(t *testing.T) {
	svc, store, _ := newFixture()

	if _, err := svc.StartRental(context.Background(), testUserID, testCarID); err != nil {
		t.Fatalf("first StartRental: %v", err)
	}
	_, err := svc.StartRental(context.Background(), testUserID, testCarID)
	if !errors.Is(err, ErrCarNotAvailable) {
		t.Fatalf("second StartRental error = %v, want ErrCarNotAvailable", err)
	}
	if len(store.rentals) != 1 {
		t.Fatalf("rejected rental must not be stored, have %d rentals", len(store.rentals))
	}
}

func TestStartRentalUnknownUser(t *testing.T) {
	svc, store, _ := newFixture()

	_, err := svc.StartRental(context.Background(), 999, testCarID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("error = %v, want ErrUserNotFound", err)
	}
	if len(store.rentals) != 0 {
		t.Fatalf("no rental should be stored, have %d", len(store.rentals))
	}
}

func TestFinishRentalSettlesCarAndRentalTogether(t *testing.T) {
	svc, store, catalog := newFixture()
	rentID := seedActiveRental(store, 90*time.Minute)

	rent, err := svc.FinishRental(context.Background(), rentID, "Card")
	if err != nil {
		t.Fatalf("FinishRental: %v", err)
	}
	if rent.Status != StatusFinished {
		t.Fatalf("rental status = %s, want %s", rent.Status, StatusFinished)
	}
	if rent.EndTime == nil {
		t.Fatal("end time not set")
	}
	if rent.TotalCost == nil || *rent.TotalCost != 30 {
		t.Fatalf("total cost = %v, want 30 (2h at 15/h)", rent.TotalCost)
	}

	stored := store.rentals[rentID]
	if stored.Status != StatusFinished || stored.TotalCost == nil {
		t.Fatalf("stored rental not settled: status=%s cost=%v", stored.Status, stored.TotalCost)
	}
	if got := catalog.cars[testCarID].StatusID; got != availableID {
		t.Fatalf("car status id = %d, want %d (Available)", got, availableID)
	}

	if len(store.payments) != 1 {
		t.Fatalf("expected 1 payment, got %d", len(store.payments))
	}
	p := store.payments[0]
	if p.RentID != rentID || p.Amount != 30 || p.PaymentMethod != "Card" || p.Status != PaymentStatusSuccess {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if p.Reference == "" {
		t.Fatal("payment reference must be set")
	}
}

func TestFinishRentalTwiceRejected(t *testing.T) {
	svc, store, _ := newFixture()
	rentID := seedActiveRental(store, time.Second)

	if _, err := svc.FinishRental(context.Background(), rentID, "Cash"); err != nil {
		t.Fatalf("first FinishRental: %v", err)
	}
	_, err := svc.FinishRental(context.Background(), rentID, "Cash")
	if !errors.Is(err, ErrRentalNotActive) {
		t.Fatalf("second FinishRental error = %v, want ErrRentalNotActive", err)
	}
}

func TestFinishRentalPaymentFailureSurfaced(t *testing.T) {
	svc, store, catalog := newFixture()
	rentID := seedActiveRental(store, time.Minute)
	store.paymentErr = errors.New("payments table unavailable")

	rent, err := svc.FinishRental(context.Background(), rentID, "Cash")
	if !errors.Is(err, ErrPaymentFailed) {
		t.Fatalf("error = %v, want ErrPaymentFailed", err)
	}
	if rent == nil || rent.Status != StatusFinished {
		t.Fatalf("settled rental must still be returned, got %+v", rent)
	}
	if store.rentals[rentID].Status != StatusFinished {
		t.Fatalf("stored rental status = %s, want %s", store.rentals[rentID].Status, StatusFinished)
	}
	if got := catalog.cars[testCarID].StatusID; got != availableID {
		t.Fatalf("car status id = %d, want %d (Available)", got, availableID)
	}
	if len(store.payments) != 0 {
		t.Fatalf("no payment row expected, got %d", len(store.payments))
	}
}

func TestCancelRentalNoCharge(t *testing.T) {
	svc, store, catalog := newFixture()
	rentID := seedActiveRental(store, time.Hour)

	rent, err := svc.CancelRental(context.Background(), rentID)
	if err != nil {
		t.Fatalf("CancelRental: %v", err)
	}
	if rent.Status != StatusCanceled {
		t.Fatalf("rental status = %s, want %s", rent.Status, StatusCanceled)
	}
	if rent.TotalCost != nil {
		t.Fatalf("canceled rental must carry no cost, got %v", *rent.TotalCost)
	}
	if got := catalog.cars[testCarID].StatusID; got != availableID {
		t.Fatalf("car status id = %d, want %d (Available)", got, availableID)
	}
	if len(store.payments) != 0 {
		t.Fatalf("no payment expected, got %d", len(store.payments))
	}
}
