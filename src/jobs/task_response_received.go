package jobs

import (
	"Backend-Slotify/src/database"
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleResponseReceivedTask ประมวลผลคำตอบใหม่: ทำเครื่องหมายว่าแจ้งเตือนแล้ว
func HandleResponseReceivedTask(ctx context.Context, t *asynq.Task) error {
	var payload ResponsePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.ResponseID)
	if err != nil {
		return err
	}

	collection := database.GetCollection("SlotifyDB", "responses")

	// ✅ ตรวจสอบว่า response ยังมีอยู่ไหม
	var response bson.M
	err = collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Response not found. Possibly deleted. Skipping task:", id.Hex())
			return nil // ✅ ไม่ถือว่า error
		}
		log.Println("❌ Failed to find response:", err)
		return err
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"notified": true}},
	)
	if err != nil {
		log.Println("❌ Failed to mark response notified:", err)
		return err
	}

	log.Println("📣 New response", payload.Reference, "for form", payload.FormID)
	return nil
}
