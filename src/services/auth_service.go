package services

import (
	"Backend-Slotify/src/database"
	"Backend-Slotify/src/models"
	"Backend-Slotify/src/utils"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var loginLimiter = utils.NewRedisRateLimiter()

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	dbUser.Password = ""
	return &dbUser, nil
}

// IsLoginRateLimited นับความพยายาม login ต่อ email ผ่าน Redis counter
// Without Redis (development mode) nothing is ever limited.
func IsLoginRateLimited(email string) bool {
	key := "login:" + strings.ToLower(email)
	limited, err := loginLimiter.Check(context.Background(), key, loginAttemptLimit, loginAttemptWindow)
	if err != nil {
		log.Println("⚠️ Login rate-limit check failed:", err)
		return false
	}
	return limited
}

// LogLoginAttempt บันทึกการพยายาม login
func LogLoginAttempt(email, ip string, success bool) {
	if success {
		log.Printf("✅ Login success: %s (ip %s)", email, ip)
		return
	}
	log.Printf("⚠️ Login failed: %s (ip %s)", email, ip)
}
