package services

import (
	DB "Backend-Slotify/src/database"
	"log"
)

func init() {
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	DB.UserCollection = DB.GetCollection("SlotifyDB", "users")
	DB.TeamCollection = DB.GetCollection("SlotifyDB", "teams")
	DB.MembershipCollection = DB.GetCollection("SlotifyDB", "memberships")
	if DB.UserCollection == nil || DB.TeamCollection == nil || DB.MembershipCollection == nil {
		log.Fatal("Failed to get the required collections")
	}

	DB.InitRedis()
	if DB.RedisURI != "" {
		DB.InitAsynq()
	}
}
