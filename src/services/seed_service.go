package services

import (
	DB "Backend-Slotify/src/database"
	"Backend-Slotify/src/models"
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// SeedUser represents a user to be seeded
type SeedUser struct {
	Email string
	Role  string // "admin" or "user"
	Name  string
}

// GeneratedPassword stores email and its generated password
type GeneratedPassword struct {
	Email    string
	Password string
	Role     string
}

// generateRandomPassword สร้างรหัสผ่านแบบสุ่ม
func generateRandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
	password := make([]byte, length)

	for i := range password {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password[i] = charset[num.Int64()]
	}

	return string(password), nil
}

// hashPassword แปลงรหัสผ่านเป็น bcrypt hash
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// SeedInitialData สร้าง admin, demo host, demo team และ membership เริ่มต้น
func SeedInitialData() ([]GeneratedPassword, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedUsers := []SeedUser{
		{
			Email: "admin@slotify.app",
			Role:  models.RoleAdmin,
			Name:  "Slotify Admin",
		},
		{
			Email: "host@slotify.app",
			Role:  models.RoleUser,
			Name:  "Demo Host",
		},
	}

	var generatedPasswords []GeneratedPassword
	userIDs := make(map[string]primitive.ObjectID)

	log.Println("🌱 Starting seed process...")

	for _, seedUser := range seedUsers {
		// ตรวจสอบว่ามี user นี้อยู่แล้วหรือไม่
		var existingUser models.User
		err := DB.UserCollection.FindOne(ctx, bson.M{"email": seedUser.Email}).Decode(&existingUser)

		if err == nil {
			log.Printf("⏭️  User %s already exists, skipping...", seedUser.Email)
			userIDs[seedUser.Email] = existingUser.ID
			continue
		} else if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("error checking existing user %s: %v", seedUser.Email, err)
		}

		// สร้างรหัสผ่านแบบสุ่ม
		plainPassword, err := generateRandomPassword(12)
		if err != nil {
			return nil, fmt.Errorf("error generating password for %s: %v", seedUser.Email, err)
		}

		// Hash รหัสผ่าน
		hashedPassword, err := hashPassword(plainPassword)
		if err != nil {
			return nil, fmt.Errorf("error hashing password for %s: %v", seedUser.Email, err)
		}

		user := models.User{
			ID:       primitive.NewObjectID(),
			Email:    seedUser.Email,
			Password: hashedPassword,
			Name:     seedUser.Name,
			Role:     seedUser.Role,
		}

		if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
			return nil, fmt.Errorf("error creating user record for %s: %v", seedUser.Email, err)
		}
		userIDs[seedUser.Email] = user.ID

		log.Printf("✅ Created user: %s (Role: %s)", seedUser.Email, seedUser.Role)

		generatedPasswords = append(generatedPasswords, GeneratedPassword{
			Email:    seedUser.Email,
			Password: plainPassword,
			Role:     seedUser.Role,
		})
	}

	if err := seedDemoTeam(ctx, userIDs["host@slotify.app"]); err != nil {
		return nil, err
	}

	return generatedPasswords, nil
}

// seedDemoTeam สร้างทีมตัวอย่างและ membership ให้ demo host
func seedDemoTeam(ctx context.Context, hostID primitive.ObjectID) error {
	const demoTeamID = 1

	var existingTeam models.Team
	err := DB.TeamCollection.FindOne(ctx, bson.M{"teamId": demoTeamID}).Decode(&existingTeam)
	if err == nil {
		log.Println("⏭️  Demo team already exists, skipping...")
		return nil
	} else if err != mongo.ErrNoDocuments {
		return fmt.Errorf("error checking existing team: %v", err)
	}

	team := models.Team{
		ID:     primitive.NewObjectID(),
		TeamID: demoTeamID,
		Name:   "Demo Team",
		Slug:   "demo-team",
	}
	if _, err := DB.TeamCollection.InsertOne(ctx, team); err != nil {
		return fmt.Errorf("error creating demo team: %v", err)
	}

	if hostID.IsZero() {
		log.Println("⚠️ No demo host to link into the demo team")
		return nil
	}

	membership := models.Membership{
		ID:       primitive.NewObjectID(),
		UserID:   hostID,
		TeamID:   demoTeamID,
		Role:     "member",
		Accepted: true,
	}
	if _, err := DB.MembershipCollection.InsertOne(ctx, membership); err != nil {
		return fmt.Errorf("error creating demo membership: %v", err)
	}

	log.Println("✅ Created demo team with host membership")
	return nil
}

// PrintGeneratedPasswords แสดงรหัสผ่านที่สร้างขึ้น
func PrintGeneratedPasswords(passwords []GeneratedPassword) {
	if len(passwords) == 0 {
		log.Println("ℹ️  No new users were created (all users already exist)")
		return
	}

	log.Println("🔐 Generated passwords for seeded users:")
	log.Println("⚠️  These are hashed in the database and cannot be retrieved again.")
	for _, p := range passwords {
		log.Printf("📧 %s (%s) → %s", p.Email, p.Role, p.Password)
	}
}
