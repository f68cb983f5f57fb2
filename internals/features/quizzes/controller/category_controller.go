// internals/features/quizzes/controller/category_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/dto"
	"quizku_backend/internals/features/quizzes/model"
	"quizku_backend/internals/features/quizzes/repository"
	helper "quizku_backend/internals/helpers"
	"quizku_backend/internals/id"
)

type CategoryController struct {
	Store repository.Store
}

func NewCategoryController(store repository.Store) *CategoryController {
	return &CategoryController{Store: store}
}

// =============================
// ➕ Create Category (bearer)
// =============================
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CreateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	category := model.CategoryModel{ID: id.New(), Name: body.Name}
	if err := ctrl.Store.CreateCategory(c.UserContext(), &category); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return fiber.NewError(fiber.StatusConflict, "Category name already exists")
		}
		log.Printf("[ERROR] create category: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToCategoryResponse(category))
}

// =============================
// 📄 List Categories (api key)
// =============================
func (ctrl *CategoryController) ListCategories(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	categories, err := ctrl.Store.ListCategories(c.UserContext(), paging.Page, paging.PerPage)
	if err != nil {
		log.Printf("[ERROR] list categories: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		result = append(result, dto.ToCategoryResponse(cat))
	}
	return c.JSON(result)
}
