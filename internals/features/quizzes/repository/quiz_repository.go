// internals/features/quizzes/repository/quiz_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizku_backend/internals/features/quizzes/model"
	userModel "quizku_backend/internals/features/users/model"
	"quizku_backend/internals/id"
)

type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// isUniqueViolation: SQLSTATE 23505 dari driver pgx.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// =============================
// ➕ Create Quiz (satu transaksi)
// =============================
// Urutan tulis: quiz → per-question → per-option → upsert tag + link.
// Gagal di tengah → rollback total, tidak ada aggregate parsial yang terlihat.
func (s *GormStore) CreateQuiz(ctx context.Context, quiz model.QuizModel, tags []string) (*QuizAggregate, error) {
	var linked []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions", "Category").Create(&quiz).Error; err != nil {
			return err
		}
		for i := range quiz.Questions {
			q := &quiz.Questions[i]
			q.QuizID = quiz.ID
			if err := tx.Omit("Options").Create(q).Error; err != nil {
				return err
			}
			for j := range q.Options {
				o := &q.Options[j]
				o.QuestionID = q.ID
				if err := tx.Create(o).Error; err != nil {
					return err
				}
			}
		}
		var err error
		linked, err = linkTags(tx, quiz.ID, tags)
		return err
	})
	if err != nil {
		return nil, err
	}
	// aggregate direkonstruksi dari nilai yang baru ditulis, tanpa re-read
	return &QuizAggregate{Quiz: quiz, Tags: linked}, nil
}

// linkTags: upsert-by-name + insert join, keduanya ON CONFLICT DO NOTHING.
// Kalah race dengan transaksi lain → pakai baris tag yang sudah ada.
// Mengembalikan nama distinct sesuai urutan input.
func linkTags(tx *gorm.DB, quizID id.ID, names []string) ([]string, error) {
	linked := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		tag := model.TagModel{ID: id.New(), Name: name}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&tag)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			// sudah ada → ambil id pemenang
			if err := tx.Where("name = ?", name).First(&tag).Error; err != nil {
				return nil, err
			}
		}

		link := model.QuizTagModel{QuizID: quizID, TagID: tag.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return nil, err
		}
		linked = append(linked, name)
	}
	return linked, nil
}

// =============================
// 📄 Get Quiz
// =============================
// Quiz tidak ada → ErrNotFound. Kegagalan SETELAH baris quiz ketemu adalah
// server error, bukan NotFound.
func (s *GormStore) GetQuiz(ctx context.Context, quizID id.ID) (*QuizAggregate, error) {
	var quiz model.QuizModel
	if err := s.db.WithContext(ctx).First(&quiz, "id = ?", quizID).Error; err != nil {
		return nil, err
	}
	aggs, err := s.hydrate(ctx, []model.QuizModel{quiz})
	if err != nil {
		return nil, err
	}
	return &aggs[0], nil
}

// hydrate memuat questions, options, dan tag untuk satu halaman quiz
// dengan query IN per level (bukan N+1 per baris).
func (s *GormStore) hydrate(ctx context.Context, quizzes []model.QuizModel) ([]QuizAggregate, error) {
	if len(quizzes) == 0 {
		return []QuizAggregate{}, nil
	}
	quizIDs := make([]id.ID, len(quizzes))
	for i, q := range quizzes {
		quizIDs[i] = q.ID
	}

	var questions []model.QuestionModel
	if err := s.db.WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Order("id ASC"). // TSID monotonic → urutan id == urutan insert
		Find(&questions).Error; err != nil {
		return nil, err
	}

	questionIDs := make([]id.ID, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}
	optionsByQuestion := make(map[id.ID][]model.QuestionOptionModel)
	if len(questionIDs) > 0 {
		var options []model.QuestionOptionModel
		if err := s.db.WithContext(ctx).
			Where("question_id IN ?", questionIDs).
			Order("id ASC").
			Find(&options).Error; err != nil {
			return nil, err
		}
		for _, o := range options {
			optionsByQuestion[o.QuestionID] = append(optionsByQuestion[o.QuestionID], o)
		}
	}

	questionsByQuiz := make(map[id.ID][]model.QuestionModel)
	for _, q := range questions {
		q.Options = optionsByQuestion[q.ID]
		questionsByQuiz[q.QuizID] = append(questionsByQuiz[q.QuizID], q)
	}

	type tagRow struct {
		QuizID id.ID
		Name   string
	}
	var tagRows []tagRow
	if err := s.db.WithContext(ctx).
		Table("quiz_tags").
		Select("DISTINCT quiz_tags.quiz_id AS quiz_id, tags.name AS name").
		Joins("JOIN tags ON tags.id = quiz_tags.tag_id").
		Where("quiz_tags.quiz_id IN ?", quizIDs).
		Scan(&tagRows).Error; err != nil {
		return nil, err
	}
	tagsByQuiz := make(map[id.ID][]string)
	for _, r := range tagRows {
		tagsByQuiz[r.QuizID] = append(tagsByQuiz[r.QuizID], r.Name)
	}

	aggs := make([]QuizAggregate, len(quizzes))
	for i, q := range quizzes {
		q.Questions = questionsByQuiz[q.ID]
		tags := tagsByQuiz[q.ID]
		if tags == nil {
			tags = []string{}
		}
		aggs[i] = QuizAggregate{Quiz: q, Tags: tags}
	}
	return aggs, nil
}

// =============================
// 📄 List Quizzes
// =============================
// Filter kategori + exclude ids sebagai bound parameter, order by title,
// paginasi 1-based. Halaman di luar jangkauan → list kosong, bukan error.
func (s *GormStore) ListQuizzes(ctx context.Context, f ListFilter) ([]QuizAggregate, error) {
	q := s.db.WithContext(ctx).Model(&model.QuizModel{})
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if len(f.ExcludeIDs) > 0 {
		q = q.Where("id NOT IN ?", f.ExcludeIDs)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage < 1 {
		perPage = 10
	}

	var quizzes []model.QuizModel
	if err := q.Order("title ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return s.hydrate(ctx, quizzes)
}

// =============================
// ✏️ Update Quiz (satu transaksi)
// =============================
// Cek eksistensi dulu (NotFound sebelum ada tulisan apa pun), lalu partial
// update, lalu kalau tags dikirim: hapus semua link lama + link ulang
// (full replacement, bukan merge).
func (s *GormStore) UpdateQuiz(ctx context.Context, quizID id.ID, patch UpdatePatch) (*QuizAggregate, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.QuizModel
		if err := tx.First(&existing, "id = ?", quizID).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.CategoryID != nil {
			updates["category_id"] = *patch.CategoryID
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.QuizModel{}).
				Where("id = ?", quizID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if patch.Tags != nil {
			if err := tx.Where("quiz_id = ?", quizID).
				Delete(&model.QuizTagModel{}).Error; err != nil {
				return err
			}
			if _, err := linkTags(tx, quizID, *patch.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// aggregate hasil update di-fetch ulang
	return s.GetQuiz(ctx, quizID)
}

// =============================
// 🗑️ Delete Quiz
// =============================
// Cascade FK membereskan questions/options/quiz_tags.
func (s *GormStore) DeleteQuiz(ctx context.Context, quizID id.ID) error {
	res := s.db.WithContext(ctx).Delete(&model.QuizModel{}, "id = ?", quizID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// =============================
// 🎲 Random Quiz
// =============================
// Uniform di antara kandidat (ORDER BY RANDOM()). Filter tag exact-match dan
// exclusion per end-user dua-duanya subquery ber-parameter.
func (s *GormStore) RandomQuiz(ctx context.Context, tag string, excludeUserID *id.ID) (*QuizAggregate, error) {
	q := s.db.WithContext(ctx).Model(&model.QuizModel{})
	if tag != "" {
		q = q.Where(
			"id IN (SELECT quiz_tags.quiz_id FROM quiz_tags JOIN tags ON tags.id = quiz_tags.tag_id WHERE tags.name = ?)",
			tag,
		)
	}
	if excludeUserID != nil {
		q = q.Where(
			"id NOT IN (SELECT quiz_id FROM user_answers WHERE end_user_id = ?)",
			*excludeUserID,
		)
	}

	var quiz model.QuizModel
	if err := q.Order("RANDOM()").First(&quiz).Error; err != nil {
		return nil, err
	}
	aggs, err := s.hydrate(ctx, []model.QuizModel{quiz})
	if err != nil {
		return nil, err
	}
	return &aggs[0], nil
}

// =============================
// 📁 Category
// =============================
func (s *GormStore) CreateCategory(ctx context.Context, cat *model.CategoryModel) error {
	if err := s.db.WithContext(ctx).Create(cat).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *GormStore) ListCategories(ctx context.Context, page, perPage int) ([]model.CategoryModel, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	categories := []model.CategoryModel{}
	err := s.db.WithContext(ctx).
		Order("name ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&categories).Error
	return categories, err
}

// =============================
// ✅ Solve support
// =============================
// Option dicari berpasangan (option_id, question_id): dua-duanya harus milik
// question yang sama.
func (s *GormStore) FindOption(ctx context.Context, questionID, optionID id.ID) (*model.QuestionOptionModel, *model.QuestionModel, error) {
	var option model.QuestionOptionModel
	if err := s.db.WithContext(ctx).
		First(&option, "id = ? AND question_id = ?", optionID, questionID).Error; err != nil {
		return nil, nil, err
	}
	var question model.QuestionModel
	if err := s.db.WithContext(ctx).
		First(&question, "id = ?", questionID).Error; err != nil {
		return nil, nil, err
	}
	return &option, &question, nil
}

// =============================
// 👤 End user + history
// =============================
func (s *GormStore) FindEndUserByEmail(ctx context.Context, email string) (*userModel.EndUserModel, error) {
	var user userModel.EndUserModel
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateEndUser idempotent: email yang sudah terdaftar mengembalikan record
// lama. Race dua registrasi email sama diselesaikan lewat ON CONFLICT.
func (s *GormStore) CreateEndUser(ctx context.Context, email string) (*userModel.EndUserModel, error) {
	user := userModel.EndUserModel{ID: id.New(), Email: email}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return s.FindEndUserByEmail(ctx, email)
	}
	return &user, nil
}

func (s *GormStore) RecordAnswer(ctx context.Context, rec *userModel.UserAnswerModel) error {
	if rec.ID == 0 {
		rec.ID = id.New()
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) ListHistory(ctx context.Context, endUserID id.ID) ([]userModel.UserAnswerModel, error) {
	history := []userModel.UserAnswerModel{}
	err := s.db.WithContext(ctx).
		Where("end_user_id = ?", endUserID).
		Order("created_at DESC").
		Find(&history).Error
	return history, err
}
