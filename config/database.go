package config

import (
	"fmt"
	"net"
	"time"

	"treehouse-hotel/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func postgresDSN(cfg DBConfig) string {
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, port, cfg.SSLMode)
}

func mysqlDSN(cfg DBConfig) string {
	port := cfg.Port
	if port == "" {
		port = "3306"
	}
	m := mysqldriver.NewConfig()
	m.User = cfg.User
	m.Passwd = cfg.Password
	m.Net = "tcp"
	m.Addr = net.JoinHostPort(cfg.Host, port)
	m.DBName = cfg.Name
	m.ParseTime = true
	m.Loc = time.UTC
	m.Params = map[string]string{"charset": "utf8mb4"}
	return m.FormatDSN()
}

func dialector(cfg DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres", "":
		return postgres.Open(postgresDSN(cfg)), nil
	case "mysql":
		return mysql.Open(mysqlDSN(cfg)), nil
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown database driver: %s", cfg.Driver)
	}
}

// ConnectDB mở kết nối theo driver cấu hình và migrate schema
func ConnectDB(cfg DBConfig, env string, w gormlogger.Writer) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	level := gormlogger.Warn
	if env == "dev" {
		level = gormlogger.Info
	}
	gormLog := gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(d, &gorm.Config{Logger: gormLog, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 && cfg.Driver == "sqlite" {
		maxOpen = 1
	}
	if maxOpen > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(maxOpen)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("fail to migrate: %w", err)
	}
	return db, nil
}

// Migrate tạo/cập nhật bảng theo thứ tự cha -> con
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Room{}, &models.BookedRoom{})
}
