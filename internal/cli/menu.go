package cli

import (
	"context"
	"errors"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/maintenance"
	"github.com/GoShareDrive/GoShareDrive/internal/rental"
	"github.com/GoShareDrive/GoShareDrive/internal/stats"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
)

// Menu 顶层菜单循环；所有子菜单共享同一个 Prompter。
// 任何操作出错只打印并回到菜单，循环本身不会被打断。
type Menu struct {
	prompt   *Prompter
	users    *user.Service
	cars     *car.Service
	rentals  *rental.Service
	maint    *maintenance.Service
	stats    *stats.Service
	pageSize int
	log      logger.Logger
}

type MenuOptions struct {
	Prompter       *Prompter
	Users          *user.Service
	Cars           *car.Service
	Rentals        *rental.Service
	Maintenance    *maintenance.Service
	Stats          *stats.Service
	SearchPageSize int
}

func NewMenu(opts MenuOptions, log logger.Logger) *Menu {
	pageSize := opts.SearchPageSize
	if pageSize <= 0 {
		pageSize = 3
	}
	return &Menu{
		prompt:   opts.Prompter,
		users:    opts.Users,
		cars:     opts.Cars,
		rentals:  opts.Rentals,
		maint:    opts.Maintenance,
		stats:    opts.Stats,
		pageSize: pageSize,
		log:      log,
	}
}

func (m *Menu) printf(format string, args ...interface{}) {
	m.prompt.Printf(format, args...)
}

// fail 统一的错误出口：取消静默返回主流程，其余记日志并打印后回到菜单。
func (m *Menu) fail(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrCanceled) {
		m.printf("Operation canceled.\n")
		return
	}
	m.log.Errorf("menu operation failed: %v", err)
	m.printf("[ERROR] %v\n", err)
}

// Run 主菜单循环；返回即退出程序。
func (m *Menu) Run(ctx context.Context) error {
	m.printf("\n--- CarSharing CLI ---\n")

	for {
		m.printf("\nMAIN MENU\n")
		m.printf("1. Users\n")
		m.printf("2. Cars\n")
		m.printf("3. Rentals\n")
		m.printf("4. Reports\n")
		m.printf("5. Exit\n")

		answer, err := m.prompt.Ask("Select section (1-5): ")
		if err != nil {
			// stdin 关闭等同于退出
			return nil
		}

		switch answer {
		case "1":
			m.userMenu(ctx)
		case "2":
			m.carMenu(ctx)
		case "3":
			m.rentalMenu(ctx)
		case "4":
			m.reportMenu(ctx)
		case "5":
			m.printf("Exiting...\n")
			return nil
		default:
			m.printf("Unknown command, please try again.\n")
		}
	}
}
