// Seed script for the first admin account
// cmd/create-admin/main.go
package main

import (
	"flag"
	"log"
	"time"

	"sikap-api/config"
	"sikap-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	fullName := flag.String("name", "Administrator", "full name of the admin account")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "initial password (required, min 8 chars)")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		log.Fatal("Usage: create-admin -email admin@example.go.id -password <min 8 chars> [-name \"Full Name\"]")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	var existing int64
	if err := config.DB.Model(&models.User{}).
		Where("email = ? AND delete_at IS NULL", *email).
		Count(&existing).Error; err != nil {
		log.Fatal("Failed to check existing users:", err)
	}
	if existing > 0 {
		log.Fatalf("User %s already exists", *email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()
	admin := models.User{
		FullName: *fullName,
		Email:    *email,
		Password: string(hashed),
		RoleID:   1, // admin
		IsActive: true,
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("Admin account %s created successfully", *email)
}
