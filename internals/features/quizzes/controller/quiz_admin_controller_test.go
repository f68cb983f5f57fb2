package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/id"
)

func newAdminApp(store *fakeStore) *fiber.App {
	app := fiber.New()
	ctrl := NewQuizAdminController(store)
	app.Post("/quizzes", ctrl.CreateQuiz)
	app.Put("/quizzes/:id", ctrl.UpdateQuiz)
	app.Delete("/quizzes/:id", ctrl.DeleteQuiz)
	return app
}

func TestCreateQuiz(t *testing.T) {
	store := newFakeStore()
	app := newAdminApp(store)

	payload := `{
		"title": "Ibukota Dunia",
		"tags": ["geografi"],
		"questions": [{
			"text": "Ibukota Perancis?",
			"options": [
				{"text": "Paris", "is_correct": true},
				{"text": "Lyon", "is_correct": false}
			]
		}]
	}`
	req := httptest.NewRequest("POST", "/quizzes", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var got struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Questions []struct {
			ID      string `json:"id"`
			Options []struct {
				ID string `json:"id"`
			} `json:"options"`
		} `json:"questions"`
		Tags []string `json:"tags"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// server yang assign ID, di semua level aggregate
	if _, err := id.Parse(got.ID); err != nil {
		t.Errorf("quiz id %q not a valid identifier: %v", got.ID, err)
	}
	if len(got.Questions) != 1 || len(got.Questions[0].Options) != 2 {
		t.Fatalf("unexpected aggregate shape: %+v", got)
	}
	if _, err := id.Parse(got.Questions[0].ID); err != nil {
		t.Errorf("question id %q not a valid identifier: %v", got.Questions[0].ID, err)
	}
	for _, opt := range got.Questions[0].Options {
		if _, err := id.Parse(opt.ID); err != nil {
			t.Errorf("option id %q not a valid identifier: %v", opt.ID, err)
		}
	}
	if len(got.Tags) != 1 || got.Tags[0] != "geografi" {
		t.Errorf("tags = %v, want [geografi]", got.Tags)
	}

	parsed, _ := id.Parse(got.ID)
	if _, ok := store.quizzes[parsed]; !ok {
		t.Errorf("quiz %s not persisted in store", got.ID)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	app := newAdminApp(newFakeStore())

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `bukan json`},
		{"missing title", `{"questions":[{"text":"?","options":[{"text":"a"},{"text":"b"}]}]}`},
		{"no questions", `{"title":"Kosong","questions":[]}`},
		{"question with one option", `{"title":"Cacat","questions":[{"text":"?","options":[{"text":"a"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/quizzes", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test error = %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestUpdateQuizNotFound(t *testing.T) {
	app := newAdminApp(newFakeStore())

	req := httptest.NewRequest("PUT", "/quizzes/"+id.New().String(), strings.NewReader(`{"title":"Baru"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestDeleteQuiz(t *testing.T) {
	store := newFakeStore()
	agg := seedQuiz(store)
	app := newAdminApp(store)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/quizzes/"+agg.Quiz.ID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}

	// delete kedua harus 404
	resp, err = app.Test(httptest.NewRequest("DELETE", "/quizzes/"+agg.Quiz.ID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
