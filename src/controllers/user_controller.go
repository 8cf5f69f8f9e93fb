package controllers

import (
	"strconv"

	"Backend-Slotify/src/models"
	"Backend-Slotify/src/services"
	"Backend-Slotify/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUsers godoc
// @Summary      Get users with pagination, search, and sorting (admin only)
// @Description  Lists registered users; search matches name or email
// @Tags         admin
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Param        search query string false "Search in name or email"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users [get]
// GetUsers - ดึงข้อมูลผู้ใช้ทั้งหมด (เฉพาะ admin)
func GetUsers(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	result, err := services.GetUsers(params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching users")
	}

	return c.JSON(result)
}

// GetUserByID - ดึงข้อมูลผู้ใช้ตาม ID
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := services.GetUserByID(id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "User not found")
	}

	return c.JSON(user)
}
