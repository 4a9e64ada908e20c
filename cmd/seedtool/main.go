package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/GoShareDrive/GoShareDrive/internal/car"
	"github.com/GoShareDrive/GoShareDrive/internal/common/config"
	"github.com/GoShareDrive/GoShareDrive/internal/common/db"
	"github.com/GoShareDrive/GoShareDrive/internal/common/logger"
	"github.com/GoShareDrive/GoShareDrive/internal/maintenance"
	"github.com/GoShareDrive/GoShareDrive/internal/rental"
	"github.com/GoShareDrive/GoShareDrive/internal/seed"
	"github.com/GoShareDrive/GoShareDrive/internal/user"
	"github.com/joho/godotenv"
)

var (
	configPath = flag.String("config", "configs/carshare.json", "配置文件路径")
)

// seedtool 清空数据库并写入演示数据；仅用于开发环境。
func main() {
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
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

	if err := gormDB.AutoMigrate(
		&user.User{},
		&car.CarModel{},
		&car.CarLocation{},
		&car.CarStatus{},
		&car.Car{},
		&rental.Rental{},
		&rental.Payment{},
		&maintenance.MaintenanceLog{},
		&maintenance.Review{},
	); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	if err := seed.Run(context.Background(), gormDB, log); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
