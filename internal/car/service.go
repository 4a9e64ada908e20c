package car

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"gorm.io/gorm"
)

var (
	ErrCarNotFound = errors.New("car not found")
	ErrPlateTaken  = errors.New("car with this plate already exists (possibly in trash)")
)

// Service 封装车辆领域的核心用例。
type Service struct {
	repo *Repo
	log  logger.Logger
}

func NewService(repo *Repo, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateCarInput 新增车辆的入参（数字字段在交互层已完成解析）。
type CreateCarInput struct {
	Brand        string
	ModelName    string
	Year         int
	PricePerHour float64
	LicensePlate string
	City         string
	Address      string
}

// UpdateCarInput 更新入参；零值字段保持原值。
type UpdateCarInput struct {
	Brand        string
	ModelName    string
	Year         int
	PricePerHour float64
	LicensePlate string
	City         string
	Address      string
	StatusName   string
}

// CreateCar 新增车辆：车牌查重覆盖回收站，维度行按自然键幂等创建，初始状态 Available。
func (s *Service) CreateCar(ctx context.Context, in CreateCarInput) (*Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	in.Brand = strings.TrimSpace(in.Brand)
	in.ModelName = strings.TrimSpace(in.ModelName)
	in.LicensePlate = strings.TrimSpace(in.LicensePlate)
	in.City = strings.TrimSpace(in.City)
	in.Address = strings.TrimSpace(in.Address)
	if in.Brand == "" || in.ModelName == "" || in.LicensePlate == "" || in.City == "" || in.Address == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	if _, err := s.repo.FindByPlateAnyState(ctx, in.LicensePlate); err == nil {
		return nil, ErrPlateTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup by plate: %w", err)
	}

	model, err := s.repo.UpsertModel(ctx, in.Brand, in.ModelName)
	if err != nil {
		return nil, fmt.Errorf("upsert model: %w", err)
	}
	loc, err := s.repo.UpsertLocation(ctx, in.City, in.Address)
	if err != nil {
		return nil, fmt.Errorf("upsert location: %w", err)
	}
	status, err := s.repo.UpsertStatus(ctx, StatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("upsert status: %w", err)
	}

	c := &Car{
		LicensePlate: in.LicensePlate,
		Year:         in.Year,
		PricePerHour: in.PricePerHour,
		ModelID:      model.ID,
		LocationID:   loc.ID,
		StatusID:     status.ID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	s.log.Infof("car created: id=%d plate=%s", c.ID, c.LicensePlate)
	return c, nil
}

// ListActiveCars 返回全部未删除车辆。
func (s *Service) ListActiveCars(ctx context.Context) ([]Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.ListActive(ctx)
}

// ListDeletedCars 返回回收站内容。
func (s *Service) ListDeletedCars(ctx context.Context) ([]Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.ListDeleted(ctx)
}

// UpdateCar 部分更新。状态规则：
// - 不允许手工设置 Rented（只能走租赁流程）
// - 车辆当前为 Rented 时任何字段都不允许修改
// - 未知状态名仅告警并跳过该字段
func (s *Service) UpdateCar(ctx context.Context, id uint, in UpdateCarInput) (*Car, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	c, err := s.repo.FindByIDAnyState(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("load car: %w", err)
	}

	// 租出中的车辆即使只改价格/车牌也要拒绝
	newStatus := strings.TrimSpace(in.StatusName)
	if err := CheckManualStatusChange(c.Status.StatusName, newStatus); err != nil {
		return nil, err
	}

	if newStatus != "" && newStatus != c.Status.StatusName {
		statusRow, err := s.repo.FindStatusByName(ctx, newStatus)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Warnf("status '%s' not found, skipping status change", newStatus)
			} else {
				return nil, fmt.Errorf("lookup status: %w", err)
			}
		} else {
			c.StatusID = statusRow.ID
			c.Status = *statusRow
		}
	}

	if in.Year != 0 {
		c.Year = in.Year
	}
	if in.PricePerHour != 0 {
		c.PricePerHour = in.PricePerHour
	}
	if plate := strings.TrimSpace(in.LicensePlate); plate != "" && plate != c.LicensePlate {
		if other, err := s.repo.FindByPlateAnyState(ctx, plate); err == nil && other.ID != id {
			return nil, ErrPlateTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup by plate: %w", err)
		}
		c.LicensePlate = plate
	}

	brand := strings.TrimSpace(in.Brand)
	modelName := strings.TrimSpace(in.ModelName)
	if brand != "" || modelName != "" {
		if brand == "" {
			brand = c.Model.Brand
		}
		if modelName == "" {
			modelName = c.Model.ModelName
		}
		model, err := s.repo.UpsertModel(ctx, brand, modelName)
		if err != nil {
			return nil, fmt.Errorf("upsert model: %w", err)
		}
		c.ModelID = model.ID
		c.Model = *model
	}

	city := strings.TrimSpace(in.City)
	address := strings.TrimSpace(in.Address)
	if city != "" || address != "" {
		if city == "" {
			city = c.Location.City
		}
		if address == "" {
			address = c.Location.Address
		}
		loc, err := s.repo.UpsertLocation(ctx, city, address)
		if err != nil {
			return nil, fmt.Errorf("upsert location: %w", err)
		}
		c.LocationID = loc.ID
		c.Location = *loc
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	s.log.Infof("car updated: id=%d", c.ID)
	return c, nil
}

// DeleteCar 软删除：写入删除时间戳，历史租赁保持可查。
func (s *Service) DeleteCar(ctx context.Context, id uint) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	if _, err := s.repo.FindByIDAnyState(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCarNotFound
		}
		return fmt.Errorf("load car: %w", err)
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("soft delete car: %w", err)
	}
	s.log.Infof("car moved to trash: id=%d", id)
	return nil
}

// RestoreCar 从回收站恢复，属性原样保留。
func (s *Service) RestoreCar(ctx context.Context, id uint) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	if _, err := s.repo.FindByIDAnyState(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCarNotFound
		}
		return fmt.Errorf("load car: %w", err)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return fmt.Errorf("restore car: %w", err)
	}
	s.log.Infof("car restored: id=%d", id)
	return nil
}
