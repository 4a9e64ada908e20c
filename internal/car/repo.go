package car

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

// UpsertModel 按自然键 (brand, model_name) 幂等获取维度行。
// 先 INSERT ... ON CONFLICT DO NOTHING 再回查，避免 find 与 insert 之间的竞态。
func (r *Repo) UpsertModel(ctx context.Context, brand, modelName string) (*CarModel, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	m := CarModel{Brand: brand, ModelName: modelName}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return nil, err
	}
	var out CarModel
	if err := db.Where("brand = ? AND model_name = ?", brand, modelName).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertLocation 按自然键 (city, address) 幂等获取维度行。
func (r *Repo) UpsertLocation(ctx context.Context, city, address string) (*CarLocation, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	l := CarLocation{City: city, Address: address}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&l).Error; err != nil {
		return nil, err
	}
	var out CarLocation
	if err := db.Where("city = ? AND address = ?", city, address).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// UpsertStatus 按名称幂等获取状态字典行。
func (r *Repo) UpsertStatus(ctx context.Context, name string) (*CarStatus, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	s := CarStatus{StatusName: name}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&s).Error; err != nil {
		return nil, err
	}
	var out CarStatus
	if err := db.Where("status_name = ?", name).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// FindStatusByName 仅查找，不创建。
func (r *Repo) FindStatusByName(ctx context.Context, name string) (*CarStatus, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var s CarStatus
	if err := db.Where("status_name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) Create(ctx context.Context, c *Car) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(c).Error
}

// FindByID 查找未删除的车辆（含关联预加载）。
func (r *Repo) FindByID(ctx context.Context, id uint) (*Car, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var c Car
	err := db.Preload("Model").Preload("Location").Preload("Status").
		Where("car_id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByIDAnyState 查找车辆，包括已软删除的行（回收站操作用）。
func (r *Repo) FindByIDAnyState(ctx context.Context, id uint) (*Car, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var c Car
	err := db.Unscoped().Preload("Model").Preload("Location").Preload("Status").
		Where("car_id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByPlateAnyState 车牌查重要覆盖已软删除的行。
func (r *Repo) FindByPlateAnyState(ctx context.Context, plate string) (*Car, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var c Car
	if err := db.Unscoped().Where("license_plate = ?", plate).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActive 返回全部未删除车辆，按 car_id 升序。
func (r *Repo) ListActive(ctx context.Context) ([]Car, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var cars []Car
	err := db.Preload("Model").Preload("Location").Preload("Status").
		Order("car_id asc").Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// ListDeleted 返回回收站内容（仅软删除行）。
func (r *Repo) ListDeleted(ctx context.Context) ([]Car, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var cars []Car
	err := db.Unscoped().Preload("Model").Preload("Location").Preload("Status").
		Where("deleted_at IS NOT NULL").Order("car_id asc").Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// Update 只写本表字段；预加载的关联不随之落库。
// 回收站里的行也允许更新（恢复场景）。
func (r *Repo) Update(ctx context.Context, c *Car) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Unscoped().Omit(clause.Associations).Save(c).Error
}

// SoftDelete 写入删除时间戳，行保留。
func (r *Repo) SoftDelete(ctx context.Context, id uint) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Where("car_id = ?", id).Delete(&Car{}).Error
}

// Restore 清除删除时间戳。
func (r *Repo) Restore(ctx context.Context, id uint) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Unscoped().Model(&Car{}).Where("car_id = ?", id).
		Update("deleted_at", nil).Error
}

// SetStatus 仅更新状态外键；租赁事务内配合事务级 Repo 使用。
func (r *Repo) SetStatus(ctx context.Context, carID, statusID uint) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Model(&Car{}).Where("car_id = ?", carID).
		Update("status_id", statusID).Error
}

// CountActive 统计未删除车辆数。
func (r *Repo) CountActive(ctx context.Context) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	var total int64
	if err := db.Model(&Car{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Search 对品牌/型号/车牌/城市做大小写不敏感的子串匹配，仅限未删除车辆。
// query 传入前已转为小写；为空时返回全部。
func (r *Repo) Search(ctx context.Context, query string, offset, limit int) ([]Car, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := db.Model(&Car{}).
		Joins("JOIN car_models ON car_models.model_id = cars.model_id").
		Joins("JOIN car_locations ON car_locations.location_id = cars.location_id")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(car_models.brand) LIKE ? OR LOWER(car_models.model_name) LIKE ? OR LOWER(cars.license_plate) LIKE ? OR LOWER(car_locations.city) LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cars []Car
	err := q.Preload("Model").Preload("Location").Preload("Status").
		Order("cars.car_id asc").Offset(offset).Limit(limit).Find(&cars).Error
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}
