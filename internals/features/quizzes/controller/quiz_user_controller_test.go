package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/model"
	"quizku_backend/internals/features/quizzes/repository"
	userModel "quizku_backend/internals/features/users/model"
	"quizku_backend/internals/id"
)

// fakeStore: in-memory Store supaya controller bisa diuji tanpa Postgres.
type fakeStore struct {
	quizzes map[id.ID]repository.QuizAggregate
	users   map[string]userModel.EndUserModel
	answers []userModel.UserAnswerModel

	randomErr  error
	recordErr  error
	lastRandom struct {
		tag           string
		excludeUserID *id.ID
	}
}

var _ repository.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		quizzes: map[id.ID]repository.QuizAggregate{},
		users:   map[string]userModel.EndUserModel{},
	}
}

func (f *fakeStore) CreateQuiz(_ context.Context, quiz model.QuizModel, tags []string) (*repository.QuizAggregate, error) {
	agg := repository.QuizAggregate{Quiz: quiz, Tags: tags}
	f.quizzes[quiz.ID] = agg
	return &agg, nil
}

func (f *fakeStore) GetQuiz(_ context.Context, quizID id.ID) (*repository.QuizAggregate, error) {
	agg, ok := f.quizzes[quizID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &agg, nil
}

func (f *fakeStore) ListQuizzes(_ context.Context, _ repository.ListFilter) ([]repository.QuizAggregate, error) {
	out := make([]repository.QuizAggregate, 0, len(f.quizzes))
	for _, agg := range f.quizzes {
		out = append(out, agg)
	}
	return out, nil
}

func (f *fakeStore) UpdateQuiz(_ context.Context, quizID id.ID, _ repository.UpdatePatch) (*repository.QuizAggregate, error) {
	return f.GetQuiz(context.Background(), quizID)
}

func (f *fakeStore) DeleteQuiz(_ context.Context, quizID id.ID) error {
	if _, ok := f.quizzes[quizID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.quizzes, quizID)
	return nil
}

func (f *fakeStore) RandomQuiz(_ context.Context, tag string, excludeUserID *id.ID) (*repository.QuizAggregate, error) {
	f.lastRandom.tag = tag
	f.lastRandom.excludeUserID = excludeUserID
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	for _, agg := range f.quizzes {
		return &agg, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) CreateCategory(_ context.Context, _ *model.CategoryModel) error { return nil }

func (f *fakeStore) ListCategories(_ context.Context, _, _ int) ([]model.CategoryModel, error) {
	return nil, nil
}

func (f *fakeStore) FindOption(_ context.Context, questionID, optionID id.ID) (*model.QuestionOptionModel, *model.QuestionModel, error) {
	for _, agg := range f.quizzes {
		for _, q := range agg.Quiz.Questions {
			if q.ID != questionID {
				continue
			}
			for _, o := range q.Options {
				if o.ID == optionID {
					question := q
					option := o
					return &option, &question, nil
				}
			}
		}
	}
	return nil, nil, repository.ErrNotFound
}

func (f *fakeStore) FindEndUserByEmail(_ context.Context, email string) (*userModel.EndUserModel, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (f *fakeStore) CreateEndUser(_ context.Context, email string) (*userModel.EndUserModel, error) {
	if user, ok := f.users[email]; ok {
		return &user, nil
	}
	user := userModel.EndUserModel{ID: id.New(), Email: email}
	f.users[email] = user
	return &user, nil
}

func (f *fakeStore) RecordAnswer(_ context.Context, rec *userModel.UserAnswerModel) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.answers = append(f.answers, *rec)
	return nil
}

func (f *fakeStore) ListHistory(_ context.Context, endUserID id.ID) ([]userModel.UserAnswerModel, error) {
	var out []userModel.UserAnswerModel
	for _, a := range f.answers {
		if a.EndUserID == endUserID {
			out = append(out, a)
		}
	}
	return out, nil
}

// seedQuiz: satu quiz dengan satu question dan dua option (index 0 benar).
func seedQuiz(store *fakeStore) repository.QuizAggregate {
	explanation := "Karena 2+2 memang 4."
	quizID := id.New()
	questionID := id.New()
	quiz := model.QuizModel{
		ID:    quizID,
		Title: "Matematika Dasar",
		Questions: []model.QuestionModel{{
			ID:          questionID,
			QuizID:      quizID,
			Text:        "2 + 2 = ?",
			Explanation: &explanation,
			Options: []model.QuestionOptionModel{
				{ID: id.New(), QuestionID: questionID, Text: "4", IsCorrect: true},
				{ID: id.New(), QuestionID: questionID, Text: "5", IsCorrect: false},
			},
		}},
	}
	agg := repository.QuizAggregate{Quiz: quiz, Tags: []string{"math"}}
	store.quizzes[quizID] = agg
	return agg
}

func newUserApp(store repository.Store) *fiber.App {
	app := fiber.New()
	ctrl := NewQuizUserController(store)
	app.Get("/quizzes/random", ctrl.GetRandomQuiz)
	app.Get("/quizzes/:id", ctrl.GetQuiz)
	app.Post("/quizzes/:id/solve", ctrl.SubmitAnswer)
	return app
}

func TestGetQuizHidesIsCorrect(t *testing.T) {
	store := newFakeStore()
	agg := seedQuiz(store)
	app := newUserApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/quizzes/"+agg.Quiz.ID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "is_correct") {
		t.Errorf("response leaks is_correct: %s", body)
	}

	var got struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Questions []struct {
			Options []json.RawMessage `json:"options"`
		} `json:"questions"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != agg.Quiz.ID.String() {
		t.Errorf("id = %q, want %q", got.ID, agg.Quiz.ID.String())
	}
	if len(got.Questions) != 1 || len(got.Questions[0].Options) != 2 {
		t.Errorf("unexpected aggregate shape: %s", body)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "math" {
		t.Errorf("tags = %v, want [math]", got.Tags)
	}
}

func TestGetQuizErrors(t *testing.T) {
	store := newFakeStore()
	app := newUserApp(store)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"malformed id", "/quizzes/not-a-tsid", fiber.StatusBadRequest},
		{"unknown id", "/quizzes/" + id.New().String(), fiber.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			if err != nil {
				t.Fatalf("app.Test error = %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestSubmitAnswerGrading(t *testing.T) {
	store := newFakeStore()
	agg := seedQuiz(store)
	app := newUserApp(store)
	question := agg.Quiz.Questions[0]

	tests := []struct {
		name        string
		optionID    id.ID
		wantCorrect bool
		wantMessage string
	}{
		{"correct option", question.Options[0].ID, true, "Correct!"},
		{"wrong option", question.Options[1].ID, false, "Incorrect."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `{"question_id":"` + question.ID.String() + `","option_id":"` + tt.optionID.String() + `"}`
			req := httptest.NewRequest("POST", "/quizzes/"+agg.Quiz.ID.String()+"/solve", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test error = %v", err)
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			var got struct {
				Correct     bool    `json:"correct"`
				Message     string  `json:"message"`
				Explanation *string `json:"explanation"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Correct != tt.wantCorrect || got.Message != tt.wantMessage {
				t.Errorf("got (%v, %q), want (%v, %q)", got.Correct, got.Message, tt.wantCorrect, tt.wantMessage)
			}
			// explanation ikut keluar baik benar maupun salah
			if got.Explanation == nil || *got.Explanation != *question.Explanation {
				t.Errorf("explanation = %v, want %q", got.Explanation, *question.Explanation)
			}
		})
	}
}

func TestSubmitAnswerMismatchedPair(t *testing.T) {
	store := newFakeStore()
	agg := seedQuiz(store)
	app := newUserApp(store)

	// option milik question lain → 400, bukan 404
	payload := `{"question_id":"` + agg.Quiz.Questions[0].ID.String() + `","option_id":"` + id.New().String() + `"}`
	req := httptest.NewRequest("POST", "/quizzes/"+agg.Quiz.ID.String()+"/solve", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error = %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSubmitAnswerHistory(t *testing.T) {
	store := newFakeStore()
	agg := seedQuiz(store)
	app := newUserApp(store)
	question := agg.Quiz.Questions[0]

	user, _ := store.CreateEndUser(context.Background(), "budi@example.com")

	solve := func(email string) int {
		payload := `{"question_id":"` + question.ID.String() + `","option_id":"` + question.Options[0].ID.String() + `"`
		if email != "" {
			payload += `,"user_email":"` + email + `"`
		}
		payload += `}`
		req := httptest.NewRequest("POST", "/quizzes/"+agg.Quiz.ID.String()+"/solve", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test error = %v", err)
		}
		return resp.StatusCode
	}

	// email resolve → history tercatat
	if status := solve(user.Email); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(store.answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(store.answers))
	}
	rec := store.answers[0]
	if rec.EndUserID != user.ID || rec.QuizID != agg.Quiz.ID || rec.QuestionID != question.ID || !rec.IsCorrect {
		t.Errorf("unexpected history record: %+v", rec)
	}

	// email tidak resolve → tidak ada record, tetap 200
	if status := solve("tidak-terdaftar@example.com"); status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(store.answers) != 1 {
		t.Errorf("answers = %d, want 1 (unknown email must not record)", len(store.answers))
	}

	// gagal tulis history tidak menggagalkan grading
	store.recordErr = errors.New("db down")
	if status := solve(user.Email); status != fiber.StatusOK {
		t.Errorf("status = %d, want 200 (history write is best effort)", status)
	}
}

func TestGetRandomQuiz(t *testing.T) {
	store := newFakeStore()
	seedQuiz(store)
	app := newUserApp(store)

	t.Run("invalid tag", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/quizzes/random?tag=ber%20spasi", nil))
		if err != nil {
			t.Fatalf("app.Test error = %v", err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("unknown email disables exclusion", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/quizzes/random?user_email=ghost%40example.com", nil))
		if err != nil {
			t.Fatalf("app.Test error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if store.lastRandom.excludeUserID != nil {
			t.Errorf("excludeUserID = %v, want nil", store.lastRandom.excludeUserID)
		}
	})

	t.Run("known email passes exclusion", func(t *testing.T) {
		user, _ := store.CreateEndUser(context.Background(), "siti@example.com")
		resp, err := app.Test(httptest.NewRequest("GET", "/quizzes/random?user_email=siti%40example.com&tag=math", nil))
		if err != nil {
			t.Fatalf("app.Test error = %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if store.lastRandom.excludeUserID == nil || *store.lastRandom.excludeUserID != user.ID {
			t.Errorf("excludeUserID = %v, want %v", store.lastRandom.excludeUserID, user.ID)
		}
		if store.lastRandom.tag != "math" {
			t.Errorf("tag = %q, want math", store.lastRandom.tag)
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		empty := newFakeStore()
		resp, err := newUserApp(empty).Test(httptest.NewRequest("GET", "/quizzes/random", nil))
		if err != nil {
			t.Fatalf("app.Test error = %v", err)
		}
		if resp.StatusCode != fiber.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}

func TestParseExcludeIDs(t *testing.T) {
	a, b := id.New(), id.New()
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", "", 0},
		{"single", a.String(), 1},
		{"pair with spaces", a.String() + " , " + b.String(), 2},
		{"malformed dropped silently", a.String() + ",bukan-id," + b.String(), 2},
		{"all malformed", "x,y,z", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseExcludeIDs(tt.raw)
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d (got %v)", len(got), tt.want, got)
			}
		})
	}
}
