package routes

import (
	"time"

	"Backend-Slotify/src/controllers"
	"Backend-Slotify/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// bookingFormRoutes กำหนดเส้นทางสำหรับ Booking Form API
func bookingFormRoutes(router fiber.Router) {
	forms := router.Group("/booking-forms")
	forms.Use(middleware.Instrument("booking-forms"))

	// หน้า booking สาธารณะ: ผู้จองไม่ต้อง login
	forms.Get("/:id/view", controllers.ViewBookingForm)
	forms.Post("/:id/responses", controllers.SubmitResponses)

	// ทุก route ถัดจากนี้ต้องมี token
	forms.Use(middleware.AuthJWT)

	forms.Post("/", middleware.RateLimited(10, time.Minute), controllers.CreateBookingForm)
	forms.Get("/", middleware.TeamMemberRequired, controllers.GetBookingForms) // teamId (ถ้าส่งมา) ต้องเป็นทีมของตัวเอง

	forms.Get("/:id/responses", middleware.TeamMemberRequired, controllers.GetFormResponses)

	forms.Get("/:id/fields/dialog", controllers.GetFieldDialog)
	forms.Post("/:id/fields", controllers.AddFormField)
	forms.Put("/:id/fields/swap", controllers.SwapFormFields) // ต้องมาก่อน /:id/fields/:index
	forms.Put("/:id/fields/:index", controllers.UpdateFormField)
	forms.Delete("/:id/fields/:index", controllers.RemoveFormField)
	forms.Patch("/:id/fields/:index/hidden", controllers.ToggleFormFieldHidden)

	forms.Get("/:id", controllers.GetBookingFormByID)
	forms.Put("/:id", controllers.UpdateBookingForm)
	forms.Delete("/:id", middleware.AdminRequired, controllers.DeleteBookingForm)
}
