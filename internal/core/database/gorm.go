package database

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = gorm.ErrInvalidDB

type Opts struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dial = mysql.Open(normalizeMySQLDSN(o.DSN, o.Username, o.Password))
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	db = db.Session(&gorm.Session{
		PrepareStmt:            true,
		SkipDefaultTransaction: true, // 单条写入为主，需要时手动开 Tx
	})
	return db, nil
}

// normalizeMySQLDSN 补齐 go-sql-driver 必需参数；已是 user:pass@tcp(...) 形式则只注入缺省项
func normalizeMySQLDSN(input, userOverride, passOverride string) string {
	dsn := strings.TrimSpace(input)
	if dsn == "" {
		return dsn
	}
	if userOverride != "" && !strings.Contains(dsn, "@") {
		cred := userOverride
		if passOverride != "" {
			cred += ":" + passOverride
		}
		dsn = cred + "@" + dsn
	}
	if !strings.Contains(dsn, "parseTime=") {
		dsn = appendParam(dsn, "parseTime=true")
	}
	if !strings.Contains(dsn, "charset=") {
		dsn = appendParam(dsn, "charset=utf8mb4")
	}
	return dsn
}

func appendParam(dsn, param string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + param
	}
	return dsn + "?" + param
}
