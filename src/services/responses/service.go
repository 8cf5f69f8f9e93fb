package responses

import (
	"context"
	"log"
	"time"

	DB "Backend-Slotify/src/database"
	"Backend-Slotify/src/jobs"
	"Backend-Slotify/src/models"
	"Backend-Slotify/src/services/bookingforms"
	"Backend-Slotify/src/services/formfields"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var responseCollection *mongo.Collection

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	responseCollection = DB.GetCollection("SlotifyDB", "responses")

	if responseCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// SubmitResponses validates one submitted answer set against the form and
// stores it. On validation failure nothing is stored: the caller gets the
// aggregated error channel plus the form re-rendered with inline errors.
func SubmitResponses(ctx context.Context, formID primitive.ObjectID, req *models.SubmitResponsesRequest) (*models.FormResponse, *models.RenderedForm, []string, error) {
	form, err := bookingforms.GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, nil, nil, err
	}

	fieldErrors, err := formfields.ValidateResponses(form.Fields, req.Responses)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(fieldErrors) > 0 {
		view, err := formfields.RenderForm(form, req.Responses, fieldErrors, false)
		if err != nil {
			return nil, nil, nil, err
		}
		return nil, view, fieldErrors, nil
	}

	response := &models.FormResponse{
		ID:        primitive.NewObjectID(),
		FormID:    formID,
		Reference: uuid.NewString(),
		Responses: req.Responses,
		CreatedAt: time.Now(),
	}

	if _, err := responseCollection.InsertOne(ctx, response); err != nil {
		return nil, nil, nil, err
	}

	// แจ้ง worker ว่ามีคำตอบใหม่เข้ามา
	if DB.AsynqClient != nil {
		task, err := jobs.NewResponseReceivedTask(response.ID.Hex(), formID.Hex(), response.Reference)
		if err != nil {
			log.Println("❌ Failed to build response-received task:", err)
		} else if _, err := DB.AsynqClient.Enqueue(task); err != nil {
			// ไม่ return error เพื่อไม่ให้การส่งคำตอบ fail
			log.Println("⚠️ Failed to enqueue response-received task:", err)
		}
	}

	return response, nil, nil, nil
}

// GetFormResponses ดึงคำตอบของฟอร์มพร้อม pagination
func GetFormResponses(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	// Verify form exists
	if _, err := bookingforms.GetBookingFormByID(ctx, formID); err != nil {
		return nil, err
	}

	filter := bson.M{"formId": formID}

	total, err := responseCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(params.GetLimit()).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := responseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.FormResponse
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(results, total, params), nil
}
