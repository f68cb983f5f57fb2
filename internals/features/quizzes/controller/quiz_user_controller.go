// internals/features/quizzes/controller/quiz_user_controller.go
package controller

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/dto"
	"quizku_backend/internals/features/quizzes/repository"
	userModel "quizku_backend/internals/features/users/model"
	"quizku_backend/internals/id"
)

// QuizUserController: operasi consumption plane (X-API-Key).
type QuizUserController struct {
	Store repository.Store
}

func NewQuizUserController(store repository.Store) *QuizUserController {
	return &QuizUserController{Store: store}
}

// Tag dipakai membangun kondisi filter, jadi charset-nya dikunci dulu
// sebelum menyentuh query.
var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// parseExcludeIDs: id malformed di-drop diam-diam, bukan menolak request.
func parseExcludeIDs(raw string) []id.ID {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []id.ID
	for _, part := range strings.Split(raw, ",") {
		parsed, err := id.Parse(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		ids = append(ids, parsed)
	}
	return ids
}

// =============================
// 📄 Get Quiz by ID
// =============================
func (ctrl *QuizUserController) GetQuiz(c *fiber.Ctx) error {
	quizID, err := id.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid quiz id")
	}

	agg, err := ctrl.Store.GetQuiz(c.UserContext(), quizID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		log.Printf("[ERROR] get quiz %s: %v", quizID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	return c.JSON(dto.ToQuizResponse(agg.Quiz, agg.Tags))
}

// =============================
// 📄 List Quizzes
// =============================
func (ctrl *QuizUserController) ListQuizzes(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		ExcludeIDs: parseExcludeIDs(c.Query("exclude_ids")),
		Page:       c.QueryInt("page", 1),
		PerPage:    c.QueryInt("per_page", 10),
	}
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		catID, err := id.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category_id")
		}
		filter.CategoryID = &catID
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}

	aggs, err := ctrl.Store.ListQuizzes(c.UserContext(), filter)
	if err != nil {
		log.Printf("[ERROR] list quizzes: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}

	result := make([]dto.QuizResponse, 0, len(aggs))
	for _, agg := range aggs {
		result = append(result, dto.ToQuizResponse(agg.Quiz, agg.Tags))
	}
	return c.JSON(result)
}

// =============================
// 🎲 Random Quiz
// =============================
func (ctrl *QuizUserController) GetRandomQuiz(c *fiber.Ctx) error {
	tag := strings.TrimSpace(c.Query("tag"))
	if tag != "" && !tagPattern.MatchString(tag) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tag")
	}

	// user_email yang tidak resolve bukan error: exclusion-nya saja yang tidak aktif
	var excludeUserID *id.ID
	if email := strings.TrimSpace(c.Query("user_email")); email != "" {
		user, err := ctrl.Store.FindEndUserByEmail(c.UserContext(), email)
		if err == nil {
			excludeUserID = &user.ID
		} else if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[ERROR] resolve end user %s: %v", email, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
		}
	}

	agg, err := ctrl.Store.RandomQuiz(c.UserContext(), tag, excludeUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "No quizzes found")
		}
		log.Printf("[ERROR] random quiz: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	return c.JSON(dto.ToQuizResponse(agg.Quiz, agg.Tags))
}

// =============================
// ✅ Solve
// =============================
// (option_id, question_id) harus berpasangan di question yang sama —
// kombinasi salah itu InvalidRequest, bukan NotFound. Explanation ikut
// dikembalikan baik jawaban benar maupun salah.
func (ctrl *QuizUserController) SubmitAnswer(c *fiber.Ctx) error {
	var body dto.SubmitAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	option, question, err := ctrl.Store.FindOption(c.UserContext(), body.QuestionID, body.OptionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid question or option")
		}
		log.Printf("[ERROR] find option: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit answer")
	}

	message := "Incorrect."
	if option.IsCorrect {
		message = "Correct!"
	}

	// side effect lunak: history hanya ditulis kalau email resolve,
	// dan gagal tulis tidak menggagalkan grading
	if email := strings.TrimSpace(body.UserEmail); email != "" {
		if user, uerr := ctrl.Store.FindEndUserByEmail(c.UserContext(), email); uerr == nil {
			rec := userModel.UserAnswerModel{
				EndUserID:  user.ID,
				QuizID:     question.QuizID,
				QuestionID: question.ID,
				OptionID:   option.ID,
				IsCorrect:  option.IsCorrect,
			}
			if werr := ctrl.Store.RecordAnswer(c.UserContext(), &rec); werr != nil {
				log.Printf("[WARNING] record answer history: %v", werr)
			}
		}
	}

	return c.JSON(dto.AnswerResponse{
		Correct:     option.IsCorrect,
		Message:     message,
		Explanation: question.Explanation,
	})
}
