package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/cli"
	"github.com/GoShareDrive/GoShareDrive/internal/common/config"
	"github.com/GoShareDrive/GoShareDrive/internal/common/db"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/maintenance"
	"github.com/GoShareDrive/GoShareDrive/internal/rental"
	"github.com/GoShareDrive/GoShareDrive/internal/stats"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var (
	configPath = flag.String("config", "configs/carshare.json", "配置文件路径")
	consulKey  = flag.String("consul-key", "", "可选：从 Consul KV 读取配置的 key")
)

func main() {
	flag.Parse()

	// .env 是可选的，缺失时沿用进程环境
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Log.Backend, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	defer closeDB(gormDB, log)

	if err := migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	ctx := context.Background()

	userRepo := user.NewRepo(gormDB)
	carRepo := car.NewRepo(gormDB)
	rentalRepo := rental.NewRepo(gormDB)
	maintRepo := maintenance.NewRepo(gormDB)
	statsRepo := stats.NewRepo(gormDB)

	// 状态字典行幂等补齐；Available 缺失会让所有租赁操作失败
	for _, name := range []string{car.StatusAvailable, car.StatusRented, car.StatusMaintenance} {
		if _, err := carRepo.UpsertStatus(ctx, name); err != nil {
			log.Fatalf("failed to ensure status %s: %v", name, err)
		}
	}

	menu := cli.NewMenu(cli.MenuOptions{
		Prompter:       cli.NewPrompter(os.Stdin, os.Stdout),
		Users:          user.NewService(userRepo, log),
		Cars:           car.NewService(carRepo, log),
		Rentals:        rental.NewService(rentalRepo, userRepo, carRepo, log),
		Maintenance:    maintenance.NewService(maintRepo, carRepo, userRepo, log),
		Stats:          stats.NewService(statsRepo, userRepo, carRepo, rentalRepo, log),
		SearchPageSize: cfg.App.SearchPageSize,
	}, log)

	if err := menu.Run(ctx); err != nil {
		log.Fatalf("menu loop exited with error: %v", err)
	}
}

func loadConfig() (*config.Config, error) {
	if *consulKey != "" {
		fileCfg, err := config.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		return config.LoadConfigFromConsulKV(fileCfg.Consul.Host, fileCfg.Consul.Port, *consulKey)
	}
	return config.LoadConfig(*configPath)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&car.CarModel{},
		&car.CarLocation{},
		&car.CarStatus{},
		&car.Car{},
		&rental.Rental{},
		&rental.Payment{},
		&maintenance.MaintenanceLog{},
		&maintenance.Review{},
	)
}

func closeDB(gormDB *gorm.DB, log logger.Logger) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Warnf("failed to get sql.DB for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnf("failed to close db: %v", err)
	}
}
