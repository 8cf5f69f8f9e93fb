package seeder

import (
	"context"
	"log"

	DB "Backend-Slotify/src/database"
	"Backend-Slotify/src/models"
	"Backend-Slotify/src/services/bookingforms"
	"Backend-Slotify/src/services/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// demoHostEmail คือ user ที่ SeedInitialData สร้างไว้
const demoHostEmail = "host@slotify.app"

func demoHost(ctx context.Context) (*models.User, error) {
	var host models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": demoHostEmail}).Decode(&host)
	if err != nil {
		return nil, err
	}
	return &host, nil
}

// SeedSampleBookingForms creates sample booking forms for the demo host,
// decorated with user fields through the same service the API uses.
func SeedSampleBookingForms() error {
	ctx := context.Background()

	host, err := demoHost(ctx)
	if err != nil {
		log.Println("⏭️  No demo host found, skipping sample booking forms")
		return nil
	}

	existing, err := bookingforms.GetBookingForms(ctx, models.DefaultPagination(), host.ID, nil)
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		log.Println("⏭️  Demo host already owns booking forms, skipping...")
		return nil
	}

	// Sample Form 1: intro call ของ host เอง
	introForm, err := bookingforms.CreateBookingForm(ctx, &models.CreateBookingFormRequest{
		Title:       "Intro call",
		Description: "A 30 minute call to get to know each other",
	}, host.ID)
	if err != nil {
		log.Printf("Error creating form 'Intro call': %v", err)
		return err
	}

	userFields := []models.FormField{
		{
			Name:     "topic",
			Type:     models.FieldTypeText,
			Label:    "What would you like to talk about?",
			Required: true,
		},
		{
			Name:  "channel",
			Type:  models.FieldTypeSelect,
			Label: "Preferred channel",
			Options: []models.FieldOption{
				{Label: "Video Call"},
				{Label: "Phone"},
			},
		},
	}
	for _, field := range userFields {
		if _, err := bookingforms.AddFormField(ctx, introForm.ID, field); err != nil {
			log.Printf("Error adding field '%s' to form '%s': %v", field.Name, introForm.Title, err)
			continue
		}
	}
	log.Printf("✅ Created form: %s (ID: %s)", introForm.Title, introForm.ID.Hex())

	// Sample Form 2: ฟอร์ม intake ของ demo team
	demoTeamID := 1
	teamForm, err := bookingforms.CreateBookingForm(ctx, &models.CreateBookingFormRequest{
		Title:       "Demo Team intake",
		Description: "Book a slot with the demo team",
		TeamID:      &demoTeamID,
	}, host.ID)
	if err != nil {
		log.Printf("Error creating form 'Demo Team intake': %v", err)
		return nil
	}
	log.Printf("✅ Created form: %s (ID: %s)", teamForm.Title, teamForm.ID.Hex())

	return nil
}

// SeedSampleResponses submits a sample response to the demo host's first
// form, running it through the full validation and render path.
func SeedSampleResponses() error {
	ctx := context.Background()

	host, err := demoHost(ctx)
	if err != nil {
		log.Println("⏭️  No demo host found, skipping sample responses")
		return nil
	}

	// ฟอร์มแรกสุดของ host คือ intro form ที่มี field topic/channel
	var form models.BookingForm
	err = DB.GetCollection("SlotifyDB", "bookingForms").
		FindOne(ctx, bson.M{"ownerId": host.ID},
			options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})).
		Decode(&form)
	if err != nil {
		log.Println("⏭️  No booking forms found to create responses for")
		return nil
	}
	formID := form.ID

	existing, err := responses.GetFormResponses(ctx, formID, models.DefaultPagination())
	if err != nil {
		return err
	}
	if existing.Total > 0 {
		log.Println("⏭️  Sample responses already exist, skipping...")
		return nil
	}

	sample := &models.SubmitResponsesRequest{
		Responses: map[string]interface{}{
			"name":    "Alice Example",
			"email":   "alice@example.com",
			"notes":   "Looking forward to it!",
			"guests":  []interface{}{"bob@example.com"},
			"topic":   "Quarterly roadmap",
			"channel": "video call",
		},
	}

	resp, _, fieldErrors, err := responses.SubmitResponses(ctx, formID, sample)
	if err != nil {
		log.Printf("Error creating sample response: %v", err)
		return err
	}
	if len(fieldErrors) > 0 {
		log.Printf("⚠️ Sample response failed validation: %v", fieldErrors)
		return nil
	}

	log.Printf("✅ Created sample response (reference: %s)", resp.Reference)
	return nil
}
