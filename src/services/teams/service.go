package teams

import (
	"context"
	"errors"
	"log"

	"Backend-Slotify/src/database"
	"Backend-Slotify/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	teamCollection       *mongo.Collection
	membershipCollection *mongo.Collection
)

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	teamCollection = database.GetCollection("SlotifyDB", "teams")
	membershipCollection = database.GetCollection("SlotifyDB", "memberships")

	if teamCollection == nil || membershipCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// IsTeamMember reports whether the user holds an accepted membership in the
// team. Unknown user ids are simply not members.
func IsTeamMember(ctx context.Context, userID string, teamID int) (bool, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, nil
	}

	count, err := membershipCollection.CountDocuments(ctx, bson.M{
		"userId":   uid,
		"teamId":   teamID,
		"accepted": true,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetTeamByID ดึงข้อมูลทีมตามหมายเลขทีม
func GetTeamByID(ctx context.Context, teamID int) (*models.Team, error) {
	var team models.Team
	err := teamCollection.FindOne(ctx, bson.M{"teamId": teamID}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("team not found")
		}
		return nil, err
	}
	return &team, nil
}

// Checker adapts this package to the guard chain's membership capability.
type Checker struct{}

func (Checker) IsTeamMember(ctx context.Context, userID string, teamID int) (bool, error) {
	return IsTeamMember(ctx, userID, teamID)
}
