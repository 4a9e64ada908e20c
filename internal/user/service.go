package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrLicenseTaken = errors.New("driver license already registered")
)

// Store 用户仓储；*Repo 是生产实现。
type Store interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByLicense(ctx context.Context, license string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
}

// Service 封装用户领域的核心用例（不依赖终端交互），便于复用和测试。
type Service struct {
	repo Store
	log  logger.Logger
}

func NewService(repo Store, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateUserInput 注册用户的入参。
type CreateUserInput struct {
	Name    string
	Email   string
	Phone   string
	License string
}

// UpdateUserInput 更新入参；空字符串表示“该字段不变”。
type UpdateUserInput struct {
	Name    string
	Email   string
	Phone   string
	License string
}

// CreateUser 注册新用户；邮箱和驾照号全局唯一。
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.License = strings.TrimSpace(in.License)
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.License == "" {
		return nil, fmt.Errorf("all fields (name, email, phone, license) are required")
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup by email: %w", err)
	}

	if _, err := s.repo.FindByLicense(ctx, in.License); err == nil {
		return nil, ErrLicenseTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup by license: %w", err)
	}

	u := &User{
		Name:                in.Name,
		Email:               in.Email,
		PhoneNumber:         in.Phone,
		DriverLicenseNumber: in.License,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Infof("user created: id=%d email=%s", u.ID, u.Email)
	return u, nil
}

// ListUsers 返回全部用户（按 ID 升序）。
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.List(ctx)
}

// GetUser 按 ID 查询。
func (s *Service) GetUser(ctx context.Context, id uint) (*User, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// UpdateUser 部分更新：入参中为空的字段保持原值。
// 更换邮箱/驾照号时同样要求唯一。
func (s *Service) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*User, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		u.Name = name
	}
	if email := strings.TrimSpace(in.Email); email != "" && email != u.Email {
		if other, err := s.repo.FindByEmail(ctx, email); err == nil && other.ID != id {
			return nil, ErrEmailTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup by email: %w", err)
		}
		u.Email = email
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		u.PhoneNumber = phone
	}
	if license := strings.TrimSpace(in.License); license != "" && license != u.DriverLicenseNumber {
		if other, err := s.repo.FindByLicense(ctx, license); err == nil && other.ID != id {
			return nil, ErrLicenseTaken
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("lookup by license: %w", err)
		}
		u.DriverLicenseNumber = license
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.log.Infof("user updated: id=%d", u.ID)
	return u, nil
}

// DeleteUser 硬删除；删除前校验存在性。
func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("service not initialized")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Infof("user deleted: id=%d", id)
	return nil
}
