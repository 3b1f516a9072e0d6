package database

import (
	"log"

	"github.com/student-council/goodness-api/internal/auth"
	"github.com/student-council/goodness-api/internal/config"
	"github.com/student-council/goodness-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(&models.User{}, &models.Announcement{}, &models.GoodnessRecord{})
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}

// Seed creates the initial admin and student accounts and a welcome
// announcement on a fresh database. It is a no-op once any user exists.
func Seed(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminPassword, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	staff := "Staff"
	admin := models.User{
		Username:   "admin",
		Password:   adminPassword,
		Role:       models.RoleAdmin,
		FirstName:  "Admin",
		LastName:   "User",
		ClassLevel: &staff,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	studentPassword, err := auth.HashPassword(cfg.SeedStudentPassword)
	if err != nil {
		return err
	}
	classLevel := "M.1/1"
	studentNumber := 101
	student := models.User{
		Username:      "student",
		Password:      studentPassword,
		Role:          models.RoleStudent,
		FirstName:     "Somchai",
		LastName:      "Dee",
		ClassLevel:    &classLevel,
		StudentNumber: &studentNumber,
	}
	if err := db.Create(&student).Error; err != nil {
		return err
	}

	imageURL := "https://placehold.co/600x400"
	welcome := models.Announcement{
		Title:    "Welcome to Student Council",
		Content:  "This is the first announcement. Welcome everyone!",
		ImageURL: &imageURL,
	}
	return db.Create(&welcome).Error
}
