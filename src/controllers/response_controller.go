package controllers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"Backend-Slotify/src/models"
	"Backend-Slotify/src/services/bookingforms"
	"Backend-Slotify/src/services/responses"
	"Backend-Slotify/src/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitResponses godoc
// @Summary      Submit answers to a booking form
// @Description  Validates the visible required fields; on failure returns the re-rendered form with inline errors
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.SubmitResponsesRequest true "Answers keyed by field name"
// @Success      201  {object}  models.FormResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/responses [post]
// SubmitResponses - รับคำตอบจากหน้า booking (endpoint สาธารณะ)
func SubmitResponses(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var req models.SubmitResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, view, fieldErrors, err := responses.SubmitResponses(ctx, formID, &req)
	if err != nil {
		if errors.Is(err, bookingforms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		// ที่เหลือรวม SchemaError คือความผิดฝั่งระบบ
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	// validation ไม่ผ่าน: ส่งฟอร์มที่ render ใหม่พร้อม error ประจำ field กลับไป
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fieldErrors,
			"form":    view,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Response submitted successfully",
		"data":    resp,
	})
}

// GetFormResponses godoc
// @Summary      Get the responses of a booking form
// @Description  Lists submitted responses newest-first with pagination
// @Tags         responses
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/responses [get]
func GetFormResponses(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := responses.GetFormResponses(ctx, formID, params)
	if err != nil {
		if errors.Is(err, bookingforms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}
