package main

import (
	"log"
	"os"

	"go-stockroom/internal/model"
	"go-stockroom/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find Operator
	email := os.Getenv("OPERATOR_EMAIL")
	if email == "" {
		email = "operator@example.com"
	}
	var operator model.Operator
	if err := db.Where("email = ?", email).First(&operator).Error; err != nil {
		log.Fatalf("❌ Operator %s not found in database: %v", email, err)
	}

	// 4. Hash new password
	newPassword := os.Getenv("OPERATOR_PASSWORD")
	if newPassword == "" {
		newPassword = "operator123"
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 5. Update, dropping any existing session
	updates := map[string]interface{}{
		"password":      string(hashedPassword),
		"token_version": "",
	}
	if err := db.Model(&operator).Updates(updates).Error; err != nil {
		log.Fatalf("❌ Failed to update password in DB: %v", err)
	}

	log.Printf("✅ Success! Password for %s has been reset", email)
}
