package config

import (
	"log"

	"hrms-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/hrms?charset=utf8mb4&parseTime=True&loc=Local")

	// TranslateError is required so duplicate-key violations surface as
	// gorm.ErrDuplicatedKey; the attendance unique index depends on it.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Attendance{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	DB = db
}
