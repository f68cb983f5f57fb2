package dto

import (
	"quizku_backend/internals/features/quizzes/model"
	"quizku_backend/internals/id"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}

type CategoryResponse struct {
	ID   id.ID  `json:"id"`
	Name string `json:"name"`
}

func ToCategoryResponse(m model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		ID:   m.ID,
		Name: m.Name,
	}
}
