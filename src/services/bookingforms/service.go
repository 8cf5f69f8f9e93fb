package bookingforms

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	DB "Backend-Slotify/src/database"
	"Backend-Slotify/src/models"
	"Backend-Slotify/src/services/formfields"
	"Backend-Slotify/src/services/teams"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	bookingFormCollection *mongo.Collection
	responseCollection    *mongo.Collection
)

var ErrFormNotFound = errors.New("booking form not found")

func init() {
	// เชื่อมต่อกับ MongoDB
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	bookingFormCollection = DB.GetCollection("SlotifyDB", "bookingForms")
	responseCollection = DB.GetCollection("SlotifyDB", "responses")

	if bookingFormCollection == nil || responseCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// --- Redis Cache Helper ---
func hashParams(params interface{}) string {
	b, _ := json.Marshal(params)
	h := sha1.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

func setCache(key string, value interface{}, ttl time.Duration) {
	if DB.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	DB.RedisClient.Set(DB.RedisCtx, key, b, ttl)
}

func getCache(key string, dest interface{}) bool {
	if DB.RedisClient == nil {
		return false
	}
	val, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func delCache(keys ...string) {
	if DB.RedisClient == nil {
		return
	}
	DB.RedisClient.Del(DB.RedisCtx, keys...)
}

func invalidateFormCaches(formID primitive.ObjectID) {
	if DB.RedisClient == nil {
		return
	}
	delCache(
		"bookingforms:view:"+formID.Hex()+":rw",
		"bookingforms:view:"+formID.Hex()+":ro",
	)
	iter := DB.RedisClient.Scan(DB.RedisCtx, 0, "bookingforms:list:*", 0).Iterator()
	for iter.Next(DB.RedisCtx) {
		DB.RedisClient.Del(DB.RedisCtx, iter.Val())
	}
}

// CreateBookingForm สร้างฟอร์มใหม่พร้อม system fields เริ่มต้น
func CreateBookingForm(ctx context.Context, req *models.CreateBookingFormRequest, ownerID primitive.ObjectID) (*models.BookingForm, error) {
	defer invalidateFormCaches(primitive.NilObjectID)

	if req.TeamID != nil {
		if _, err := teams.GetTeamByID(ctx, *req.TeamID); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	form := &models.BookingForm{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     ownerID,
		TeamID:      req.TeamID,
		Fields:      models.DefaultBookingFields(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := bookingFormCollection.InsertOne(ctx, form); err != nil {
		return nil, err
	}

	return form, nil
}

// GetBookingForms ดึงฟอร์มทั้งหมดของ owner (หรือของทีม ถ้าระบุ teamId)
func GetBookingForms(ctx context.Context, params models.PaginationParams, ownerID primitive.ObjectID, teamID *int) (*models.PaginatedResponse, error) {
	key := "bookingforms:list:" + hashParams(struct {
		Params models.PaginationParams
		Owner  string
		TeamID *int
	}{params, ownerID.Hex(), teamID})

	var cached models.PaginatedResponse
	if getCache(key, &cached) {
		return &cached, nil
	}

	filter := bson.M{"ownerId": ownerID}
	if teamID != nil {
		filter = bson.M{"teamId": *teamID}
	}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := bookingFormCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(params.GetLimit()).
		SetSort(params.GetSortOrder())

	cursor, err := bookingFormCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.BookingForm
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	result := models.NewPaginatedResponse(forms, total, params)
	setCache(key, result, 5*time.Minute)

	return result, nil
}

// GetBookingFormByID ดึงฟอร์มตาม ID
func GetBookingFormByID(ctx context.Context, formID primitive.ObjectID) (*models.BookingForm, error) {
	var form models.BookingForm
	err := bookingFormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// UpdateBookingForm แก้ไข title/description ของฟอร์ม
func UpdateBookingForm(ctx context.Context, formID primitive.ObjectID, req *models.UpdateBookingFormRequest) (*models.BookingForm, error) {
	defer invalidateFormCaches(formID)

	update := bson.M{"$set": bson.M{
		"title":       req.Title,
		"description": req.Description,
		"updatedAt":   time.Now(),
	}}

	result, err := bookingFormCollection.UpdateOne(ctx, bson.M{"_id": formID}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrFormNotFound
	}

	return GetBookingFormByID(ctx, formID)
}

// DeleteBookingForm ลบฟอร์มและคำตอบทั้งหมดของฟอร์มนั้น
func DeleteBookingForm(ctx context.Context, formID primitive.ObjectID) error {
	defer invalidateFormCaches(formID)

	result, err := bookingFormCollection.DeleteOne(ctx, bson.M{"_id": formID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFormNotFound
	}

	if _, err := responseCollection.DeleteMany(ctx, bson.M{"formId": formID}); err != nil {
		log.Println("⚠️ Failed to delete responses of form", formID.Hex(), ":", err)
	}

	return nil
}

// persistFields เขียน fields ชุดใหม่กลับลงฟอร์ม
func persistFields(ctx context.Context, form *models.BookingForm, fields []models.FormField) (*models.BookingForm, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{
		"fields":    fields,
		"updatedAt": now,
	}}

	if _, err := bookingFormCollection.UpdateOne(ctx, bson.M{"_id": form.ID}, update); err != nil {
		return nil, err
	}

	form.Fields = fields
	form.UpdatedAt = now
	invalidateFormCaches(form.ID)
	return form, nil
}

// AddFormField เพิ่ม field ใหม่ต่อท้ายฟอร์ม (create mode ของ dialog)
func AddFormField(ctx context.Context, formID primitive.ObjectID, draft models.FormField) (*models.BookingForm, error) {
	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	editor := formfields.NewEditor(form.Fields)
	editor.AddField()
	if err := editor.SubmitDraft(draft); err != nil {
		return nil, err
	}

	return persistFields(ctx, form, editor.Fields())
}

// UpdateFormField แทนที่ field ตาม index ด้วย draft (edit mode ของ dialog)
func UpdateFormField(ctx context.Context, formID primitive.ObjectID, index int, draft models.FormField) (*models.BookingForm, error) {
	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(form.Fields) {
		return nil, formfields.ErrIndexOutOfRange
	}

	editor := formfields.NewEditor(form.Fields)
	editor.EditField(index)
	if err := editor.SubmitDraft(draft); err != nil {
		return nil, err
	}

	return persistFields(ctx, form, editor.Fields())
}

// RemoveFormField ลบ field ตาม index - system fields ลบไม่ได้
func RemoveFormField(ctx context.Context, formID primitive.ObjectID, index int) (*models.BookingForm, error) {
	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(form.Fields) {
		return nil, formfields.ErrIndexOutOfRange
	}
	if !form.Fields[index].CanDelete() {
		return nil, formfields.ErrSystemFieldDelete
	}

	editor := formfields.NewEditor(form.Fields)
	editor.RemoveField(index)

	return persistFields(ctx, form, editor.Fields())
}

// SwapFormFields สลับตำแหน่ง field ที่ติดกัน (เลื่อนขึ้น/ลง)
func SwapFormFields(ctx context.Context, formID primitive.ObjectID, index, with int) (*models.BookingForm, error) {
	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(form.Fields) || with < 0 || with >= len(form.Fields) {
		return nil, formfields.ErrIndexOutOfRange
	}
	if with != index+1 && with != index-1 {
		return nil, formfields.ErrSwapNotAdjacent
	}

	editor := formfields.NewEditor(form.Fields)
	editor.Swap(index, with)

	return persistFields(ctx, form, editor.Fields())
}

// ToggleFormFieldHidden สลับสถานะซ่อนของ field
func ToggleFormFieldHidden(ctx context.Context, formID primitive.ObjectID, index int) (*models.BookingForm, error) {
	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	editor := formfields.NewEditor(form.Fields)
	if err := editor.ToggleHidden(index); err != nil {
		return nil, err
	}

	return persistFields(ctx, form, editor.Fields())
}

// FieldDialog สร้าง config ของ authoring dialog สำหรับ field ตาม index
// (index = -1 คือ create mode: draft เปล่า)
func FieldDialog(ctx context.Context, formID primitive.ObjectID, index int) (*models.FieldDialogConfig, error) {
	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	editor := formfields.NewEditor(form.Fields)
	var draft models.FormField
	if index < 0 {
		draft = editor.AddField()
		index = -1
	} else {
		if index >= len(form.Fields) {
			return nil, formfields.ErrIndexOutOfRange
		}
		draft = editor.EditField(index)
	}

	config := formfields.DialogConfig(draft, index)
	return &config, nil
}

// RenderBookingForm คืน view-model ของฟอร์มสำหรับ client (hydration)
func RenderBookingForm(ctx context.Context, formID primitive.ObjectID, readOnly bool) (*models.RenderedForm, error) {
	mode := "rw"
	if readOnly {
		mode = "ro"
	}
	key := fmt.Sprintf("bookingforms:view:%s:%s", formID.Hex(), mode)

	var cached models.RenderedForm
	if getCache(key, &cached) {
		return &cached, nil
	}

	form, err := GetBookingFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	view, err := formfields.RenderForm(form, nil, nil, readOnly)
	if err != nil {
		return nil, err
	}

	setCache(key, view, 5*time.Minute)
	return view, nil
}
