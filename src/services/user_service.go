package services

import (
	"Backend-Slotify/src/database"
	"Backend-Slotify/src/models"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUsers - ดึงข้อมูลผู้ใช้ทั้งหมดพร้อม pagination และค้นหา
func GetUsers(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"email": bson.M{"$regex": params.Search, "$options": "i"}},
			{"name": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := database.UserCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(params.GetLimit()).
		SetSort(params.GetSortOrder())

	cursor, err := database.UserCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(users, total, params), nil
}

// GetUserByID - ดึงข้อมูลผู้ใช้ตาม ID
func GetUserByID(id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	var user models.User
	err = database.UserCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}
