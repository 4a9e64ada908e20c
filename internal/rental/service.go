package rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCarNotAvailable = errors.New("car is not available (or does not exist)")
	ErrRentalNotActive = errors.New("no active rental with that id")
	ErrPaymentFailed   = errors.New("rental finished but payment recording failed")
)

// 支付记录的固定状态值。
const PaymentStatusSuccess = "Success"

// Store 租赁仓储；*Repo 是生产实现。
// 带 WithCarStatus 后缀的方法在一个事务内同时写租赁与车辆状态。
type Store interface {
	GetByIDWithCar(ctx context.Context, id uint) (*Rental, error)
	ListActive(ctx context.Context) ([]Rental, error)
	CreatePayment(ctx context.Context, p *Payment) error
	CreateWithCarStatus(ctx context.Context, rent *Rental, carStatusID uint) error
	SaveWithCarStatus(ctx context.Context, rent *Rental, carStatusID uint) error
}

// UserDirectory 只需按 ID 校验用户存在；*user.Repo 是生产实现。
type UserDirectory interface {
	FindByID(ctx context.Context, id uint) (*user.User, error)
}

// CarCatalog 车辆与状态字典的读取口；*car.Repo 是生产实现。
type CarCatalog interface {
	FindByID(ctx context.Context, id uint) (*car.Car, error)
	FindStatusByName(ctx context.Context, name string) (*car.CarStatus, error)
	UpsertStatus(ctx context.Context, name string) (*car.CarStatus, error)
}

// Service 封装租赁生命周期的核心用例。
// 可用性以车辆状态行为准，租赁状态与车辆状态由仓储在事务内保持一致。
type Service struct {
	store Store
	users UserDirectory
	cars  CarCatalog
	log   logger.Logger
}

func NewService(store Store, users UserDirectory, cars CarCatalog, log logger.Logger) *Service {
	return &Service{store: store, users: users, cars: cars, log: log}
}

// StartRental 开始租车：
// 1. 用户必须存在
// 2. Available 状态行必须已配置（缺失视为硬配置错误）
// 3. 车辆存在、未删除、当前 Available
// 4. 事务内：插入 Active 租赁 + 车辆状态置 Rented
//
// 已知缺口：第 3 步的可用性读取与第 4 步的事务写入没有合并为
// 原子比较交换，并发调用方可能同时观察到 Available；部署形态为
// 单人交互终端，保持原行为不额外加锁。
func (s *Service) StartRental(ctx context.Context, userID, carID uint) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	log := s.log.WithField("car_id", carID)
	log.Infof("processing rental request: user=%d", userID)

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	availableStatus, err := s.cars.FindStatusByName(ctx, car.StatusAvailable)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("status '%s' not defined in database", car.StatusAvailable)
		}
		return nil, fmt.Errorf("lookup status: %w", err)
	}

	c, err := s.cars.FindByID(ctx, carID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotAvailable
		}
		return nil, fmt.Errorf("load car: %w", err)
	}
	if c.StatusID != availableStatus.ID {
		return nil, ErrCarNotAvailable
	}

	// Rented 状态行允许懒创建
	rentedStatus, err := s.cars.UpsertStatus(ctx, car.StatusRented)
	if err != nil {
		return nil, fmt.Errorf("upsert status: %w", err)
	}

	rent := &Rental{
		UserID:    userID,
		CarID:     carID,
		Status:    StatusActive,
		StartTime: time.Now(),
	}

	if err := s.store.CreateWithCarStatus(ctx, rent, rentedStatus.ID); err != nil {
		log.Errorf("rental transaction failed: %v", err)
		return nil, fmt.Errorf("rental transaction: %w", err)
	}

	log.Infof("rental started: rent_id=%d", rent.ID)
	return rent, nil
}

// FinishRental 还车结算：
// 1. 租赁必须存在且为 Active
// 2. 计费时长向上取整到整小时，下限 1 小时
// 3. 按还车时刻的车辆小时单价结算
// 4. 事务内：租赁写入结束时间/费用并置 Finished + 车辆状态回 Available
// 5. 事务提交后补写支付记录；此步失败只留下无支付行的 Finished 租赁，
//    以 ErrPaymentFailed 上报，不回滚已提交的事务
func (s *Service) FinishRental(ctx context.Context, rentID uint, paymentMethod string) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	log := s.log.WithField("rent_id", rentID)
	log.Infof("processing return")

	rent, err := s.store.GetByIDWithCar(ctx, rentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRentalNotActive
		}
		return nil, fmt.Errorf("load rental: %w", err)
	}
	if rent.Status != StatusActive {
		return nil, ErrRentalNotActive
	}

	now := time.Now()
	hours := BilledHours(rent.StartTime, now)
	cost := TotalCost(rent.StartTime, now, rent.Car.PricePerHour)
	log.Infof("billing: duration=%dh rate=%.2f/h total=%.2f", hours, rent.Car.PricePerHour, cost)

	availableStatus, err := s.cars.FindStatusByName(ctx, car.StatusAvailable)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("status '%s' not defined in database", car.StatusAvailable)
		}
		return nil, fmt.Errorf("lookup status: %w", err)
	}

	if err := ApplyTransition(rent, StatusFinished, now); err != nil {
		return nil, err
	}
	rent.TotalCost = &cost
	if err := s.store.SaveWithCarStatus(ctx, rent, availableStatus.ID); err != nil {
		log.Errorf("return transaction failed: %v", err)
		return nil, fmt.Errorf("return transaction: %w", err)
	}

	// 支付记录在车辆/租赁事务之外补写（见 DESIGN.md 的已知缺口）
	payment := &Payment{
		RentID:        rent.ID,
		Amount:        cost,
		PaymentMethod: paymentMethod,
		Status:        PaymentStatusSuccess,
		Reference:     uuid.NewString(),
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		log.Errorf("payment recording failed: %v", err)
		return rent, ErrPaymentFailed
	}

	log.Infof("car returned: total=%.2f payment_ref=%s", cost, payment.Reference)
	return rent, nil
}

// CancelRental 取消进行中的租赁：不产生费用，车辆状态回 Available。
func (s *Service) CancelRental(ctx context.Context, rentID uint) (*Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	log := s.log.WithField("rent_id", rentID)

	rent, err := s.store.GetByIDWithCar(ctx, rentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRentalNotActive
		}
		return nil, fmt.Errorf("load rental: %w", err)
	}
	if rent.Status != StatusActive {
		return nil, ErrRentalNotActive
	}

	availableStatus, err := s.cars.FindStatusByName(ctx, car.StatusAvailable)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("status '%s' not defined in database", car.StatusAvailable)
		}
		return nil, fmt.Errorf("lookup status: %w", err)
	}

	if err := ApplyTransition(rent, StatusCanceled, time.Now()); err != nil {
		return nil, err
	}
	if err := s.store.SaveWithCarStatus(ctx, rent, availableStatus.ID); err != nil {
		log.Errorf("cancel transaction failed: %v", err)
		return nil, fmt.Errorf("cancel transaction: %w", err)
	}

	log.Infof("rental canceled")
	return rent, nil
}

// ActiveRentals 返回全部进行中的租赁（带用户与车辆信息）。
func (s *Service) ActiveRentals(ctx context.Context) ([]Rental, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.store.ListActive(ctx)
}
