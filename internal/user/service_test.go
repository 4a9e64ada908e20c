package user

import (
	"context"
	"errors"
	"testing"

	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"gorm.io/gorm"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}
func (l nopLogger) WithField(string, interface{}) logger.Logger { return l }

type fakeStore struct {
	users  map[uint]*User
	nextID uint
}

func (f *fakeStore) Create(_ context.Context, u *User) error {
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindByLicense(_ context.Context, license string) (*User, error) {
	for _, u := range f.users {
		if u.DriverLicenseNumber == license {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) List(_ context.Context) ([]User, error) {
	var out []User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, u *User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

func newService() (*Service, *fakeStore) {
	store := &fakeStore{users: map[uint]*User{}}
	return NewService(store, nopLogger{}), store
}

func TestCreateUserDuplicateEmailLeavesTableUnchanged(t *testing.T) {
	svc, store := newService()

	first := CreateUserInput{Name: "Ivan", Email: "ivan@example.com", Phone: "+380501112233", License: "UA-111"}
	if _, err := svc.CreateUser(context.Background(), first); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	dup := CreateUserInput{Name: "Other", Email: "ivan@example.com", Phone: "+380509998877", License: "UA-222"}
	_, err := svc.CreateUser(context.Background(), dup)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("error = %v, want ErrEmailTaken", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("duplicate must not be stored, have %d users", len(store.users))
	}
}

func TestCreateUserDuplicateLicenseLeavesTableUnchanged(t *testing.T) {
	svc, store := newService()

	first := CreateUserInput{Name: "Ivan", Email: "ivan@example.com", Phone: "+380501112233", License: "UA-111"}
	if _, err := svc.CreateUser(context.Background(), first); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	dup := CreateUserInput{Name: "Other", Email: "other@example.com", Phone: "+380509998877", License: "UA-111"}
	_, err := svc.CreateUser(context.Background(), dup)
	if !errors.Is(err, ErrLicenseTaken) {
		t.Fatalf("error = %v, want ErrLicenseTaken", err)
	}
	if len(store.users) != 1 {
		t.Fatalf("duplicate must not be stored, have %d users", len(store.users))
	}
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	svc, _ := newService()

	a, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "A", Email: "a@example.com", Phone: "1", License: "L-A"})
	if err != nil {
		t.Fatalf("CreateUser a: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "B", Email: "b@example.com", Phone: "2", License: "L-B"}); err != nil {
		t.Fatalf("CreateUser b: %v", err)
	}

	_, err = svc.UpdateUser(context.Background(), a.ID, UpdateUserInput{Email: "b@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("error = %v, want ErrEmailTaken", err)
	}
}

func TestUpdateUserSkipsEmptyFields(t *testing.T) {
	svc, store := newService()

	u, err := svc.CreateUser(context.Background(), CreateUserInput{Name: "Ivan", Email: "ivan@example.com", Phone: "+380501112233", License: "UA-111"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := svc.UpdateUser(context.Background(), u.ID, UpdateUserInput{Phone: "+380671234567"})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if got.Name != "Ivan" || got.Email != "ivan@example.com" || got.DriverLicenseNumber != "UA-111" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if store.users[u.ID].PhoneNumber != "+380671234567" {
		t.Fatalf("phone not persisted: %+v", store.users[u.ID])
	}
}
