package controllers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"Backend-Slotify/src/models"
	"Backend-Slotify/src/services/bookingforms"
	"Backend-Slotify/src/services/formfields"
	"Backend-Slotify/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseFormID อ่าน :id ของฟอร์มจาก path
func parseFormID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// handleFieldOpError จัดประเภท error จาก field operations:
// schema ที่พังคือฝั่งระบบ (500), นโยบาย system-field และ input ผิดคือ 400
func handleFieldOpError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, bookingforms.ErrFormNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	case formfields.IsSchemaError(err):
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	case errors.Is(err, formfields.ErrIndexOutOfRange),
		errors.Is(err, formfields.ErrSwapNotAdjacent),
		errors.Is(err, formfields.ErrFieldNameTaken),
		errors.Is(err, formfields.ErrFieldNameRequired),
		errors.Is(err, formfields.ErrUnknownFieldType),
		errors.Is(err, formfields.ErrSystemFieldLocked),
		errors.Is(err, formfields.ErrSystemFieldDelete),
		errors.Is(err, formfields.ErrSystemFieldHide),
		errors.Is(err, formfields.ErrOptionFloor),
		errors.Is(err, formfields.ErrNoOpenDraft):
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// CreateBookingForm godoc
// @Summary      Create a new booking form
// @Description  Create a new booking form pre-seeded with the system default fields
// @Tags         booking-forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateBookingFormRequest true "Booking form"
// @Success      201  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /booking-forms [post]
// CreateBookingForm - สร้างฟอร์มใหม่
func CreateBookingForm(c *fiber.Ctx) error {
	var req models.CreateBookingFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	userID, _ := c.Locals("userId").(string)
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.CreateBookingForm(ctx, &req, ownerID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking form created successfully",
		"data":    form,
	})
}

// GetBookingForms godoc
// @Summary      Get booking forms with pagination, search, and sorting
// @Description  Lists the caller's forms, or a team's forms when teamId is given
// @Tags         booking-forms
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Param        search query string false "Search in title"
// @Param        teamId query int false "Team ID"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /booking-forms [get]
func GetBookingForms(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	var teamID *int
	if q := c.Query("teamId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid teamId")
		}
		teamID = &id
	}

	userID, _ := c.Locals("userId").(string)
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid user")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := bookingforms.GetBookingForms(ctx, params, ownerID, teamID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}

// GetBookingFormByID godoc
// @Summary      Get a booking form by ID
// @Description  Get a booking form with its full field schema
// @Tags         booking-forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.BookingForm
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id} [get]
func GetBookingFormByID(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.GetBookingFormByID(ctx, formID)
	if err != nil {
		if errors.Is(err, bookingforms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(form)
}

// UpdateBookingForm godoc
// @Summary      Update a booking form's title and description
// @Description  Update a booking form's title and description
// @Tags         booking-forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.UpdateBookingFormRequest true "New title/description"
// @Success      200  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id} [put]
func UpdateBookingForm(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var req models.UpdateBookingFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.UpdateBookingForm(ctx, formID, &req)
	if err != nil {
		if errors.Is(err, bookingforms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Booking form updated successfully",
		"data":    form,
	})
}

// DeleteBookingForm godoc
// @Summary      Delete a booking form
// @Description  Delete a booking form and all of its responses
// @Tags         booking-forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id} [delete]
func DeleteBookingForm(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := bookingforms.DeleteBookingForm(ctx, formID); err != nil {
		if errors.Is(err, bookingforms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Booking form deleted successfully",
	})
}

// ViewBookingForm godoc
// @Summary      Get the rendered view of a booking form
// @Description  Returns the server-prepared view-model the booking page hydrates from
// @Tags         booking-forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        readOnly query bool false "Render in read-only mode"
// @Success      200  {object}  models.RenderedForm
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/view [get]
func ViewBookingForm(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	readOnly := c.QueryBool("readOnly", false)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	view, err := bookingforms.RenderBookingForm(ctx, formID, readOnly)
	if err != nil {
		if errors.Is(err, bookingforms.ErrFormNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, err.Error())
		}
		// schema ที่ผิด invariant ถือเป็นความผิดฝั่งระบบเสมอ
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(view)
}

// AddFormField godoc
// @Summary      Add a field to a booking form
// @Description  Appends a user-authored field (create mode of the field dialog)
// @Tags         booking-form-fields
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.FormField true "Field draft"
// @Success      201  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/fields [post]
func AddFormField(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var draft models.FormField
	if err := c.BodyParser(&draft); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.AddFormField(ctx, formID, draft)
	if err != nil {
		return handleFieldOpError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Field added successfully",
		"data":    form,
	})
}

// UpdateFormField godoc
// @Summary      Replace a field of a booking form
// @Description  Replaces the field at index wholesale (edit mode of the field dialog)
// @Tags         booking-form-fields
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        index path int true "Field index"
// @Param        body body models.FormField true "Field draft"
// @Success      200  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/fields/{index} [put]
func UpdateFormField(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid field index")
	}

	var draft models.FormField
	if err := c.BodyParser(&draft); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.UpdateFormField(ctx, formID, index, draft)
	if err != nil {
		return handleFieldOpError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Field updated successfully",
		"data":    form,
	})
}

// RemoveFormField godoc
// @Summary      Remove a field from a booking form
// @Description  Removes the field at index; system fields cannot be removed
// @Tags         booking-form-fields
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        index path int true "Field index"
// @Success      200  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/fields/{index} [delete]
func RemoveFormField(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid field index")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.RemoveFormField(ctx, formID, index)
	if err != nil {
		return handleFieldOpError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Field removed successfully",
		"data":    form,
	})
}

// SwapFormFields godoc
// @Summary      Swap two adjacent fields of a booking form
// @Description  Moves a field up or down by one position
// @Tags         booking-form-fields
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.SwapFieldsRequest true "Indices to swap"
// @Success      200  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/fields/swap [put]
func SwapFormFields(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var req models.SwapFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.SwapFormFields(ctx, formID, req.Index, req.With)
	if err != nil {
		return handleFieldOpError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Fields swapped successfully",
		"data":    form,
	})
}

// ToggleFormFieldHidden godoc
// @Summary      Toggle a field's hidden flag
// @Description  Flips hidden on the field at index; fully-system fields cannot be hidden
// @Tags         booking-form-fields
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        index path int true "Field index"
// @Success      200  {object}  models.BookingForm
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/fields/{index}/hidden [patch]
func ToggleFormFieldHidden(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid field index")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form, err := bookingforms.ToggleFormFieldHidden(ctx, formID, index)
	if err != nil {
		return handleFieldOpError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Field visibility toggled successfully",
		"data":    form,
	})
}

// GetFieldDialog godoc
// @Summary      Get the authoring dialog config for a field
// @Description  Which controls the field dialog enables; index=-1 opens create mode
// @Tags         booking-form-fields
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        index query int false "Field index (omit for create mode)"
// @Success      200  {object}  models.FieldDialogConfig
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /booking-forms/{id}/fields/dialog [get]
func GetFieldDialog(c *fiber.Ctx) error {
	formID, err := parseFormID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	index, err := strconv.Atoi(c.Query("index", "-1"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid field index")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	config, err := bookingforms.FieldDialog(ctx, formID, index)
	if err != nil {
		return handleFieldOpError(c, err)
	}

	return c.JSON(config)
}
