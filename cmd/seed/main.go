package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

// Seeds the admin user from ADMIN_USERNAME / ADMIN_EMAIL / ADMIN_PASSWORD.
// Idempotent: an existing admin is left untouched.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	username := getEnv("ADMIN_USERNAME", "admin")
	email := getEnv("ADMIN_EMAIL", "admin@localhost")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	if _, err := userRepo.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin user %q already exists, nothing to do", username)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}
	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		log.Fatalf("Email %q is already taken", email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin email: %v", err)
	}

	// Seeding only writes credentials, so no token machinery is needed here.
	creds := service.NewCredentialStore()
	salt, err := creds.GenerateSalt()
	if err != nil {
		log.Fatalf("Failed to generate salt: %v", err)
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: creds.HashPassword(password, salt),
		Salt:         salt,
		Role:         "admin",
		Active:       true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Seed completed: admin user %q created (id=%d)", user.Username, user.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
