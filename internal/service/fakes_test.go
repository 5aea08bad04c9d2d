package service

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes. They return gorm.ErrRecordNotFound on misses
// so the services' errors.Is checks behave as they do against Postgres.

func progressKey(userID string, questionID uint) string {
	return fmt.Sprintf("%s/%d", userID, questionID)
}

type fakeProgressRepo struct {
	mu   sync.Mutex
	rows map[string]*model.UserProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]*model.UserProgress)}
}

func (r *fakeProgressRepo) Find(userID string, questionID uint) (*model.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[progressKey(userID, questionID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeProgressRepo) Upsert(userID string, questionID uint, apply func(*model.UserProgress)) (*model.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := progressKey(userID, questionID)
	row, ok := r.rows[key]
	if !ok {
		row = &model.UserProgress{
			UserID:      userID,
			QuestionID:  questionID,
			LastAttempt: time.Now(),
			Difficulty:  model.ReviewNormal,
		}
		r.rows[key] = row
	}
	apply(row)
	cp := *row
	return &cp, nil
}

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions map[uint]*model.Question
	progress  *fakeProgressRepo
}

func newFakeQuestionRepo(progress *fakeProgressRepo) *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uint]*model.Question), progress: progress}
}

func (r *fakeQuestionRepo) add(q model.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := q
	r.questions[q.ID] = &cp
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	r.add(*question)
	return nil
}

func (r *fakeQuestionRepo) FindByIDWithAnswers(id uint) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuestionRepo) FindActiveByFilters(filters repository.QuestionFilters) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Question
	for _, q := range r.questions {
		if !q.IsActive {
			continue
		}
		if filters.ExamTag != nil && (q.ExamTag == nil || *q.ExamTag != *filters.ExamTag) {
			continue
		}
		if filters.Category != nil && q.Category != *filters.Category {
			continue
		}
		if filters.Difficulty != nil && q.Difficulty != *filters.Difficulty {
			continue
		}
		out = append(out, *q)
	}
	// Deterministic base order so shuffling is the only source of randomness.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeQuestionRepo) FindDueForReview(userID string, now time.Time, limit int) ([]model.UserProgress, error) {
	r.progress.mu.Lock()
	var due []model.UserProgress
	for _, row := range r.progress.rows {
		if row.UserID != userID || row.NextReview == nil || row.NextReview.After(now) {
			continue
		}
		due = append(due, *row)
	}
	r.progress.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].NextReview.Before(*due[j].NextReview) })
	if len(due) > limit {
		due = due[:limit]
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range due {
		if q, ok := r.questions[due[i].QuestionID]; ok {
			due[i].Question = *q
		}
	}
	return due, nil
}

type fakeSubmissionRepo struct {
	mu     sync.Mutex
	rows   []*model.Submission
	nextID uint
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{nextID: 1}
}

func (r *fakeSubmissionRepo) Create(submission *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission.ID = r.nextID
	submission.CreatedAt = time.Now()
	r.nextID++
	for i := range submission.Answers {
		submission.Answers[i].SubmissionID = submission.ID
	}
	cp := *submission
	cp.Answers = append([]model.SubmissionAnswer(nil), submission.Answers...)
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeSubmissionRepo) FindByIDWithDetails(id uint) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ID == id {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSubmissionRepo) FindAllByUser(userID *string, limit int) ([]model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Submission
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		row := r.rows[i]
		if userID != nil && (row.UserID == nil || *row.UserID != *userID) {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) CountByUser(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.UserID != nil && *row.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) CountAnswersByUser(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.UserID != nil && *row.UserID == userID {
			n += int64(len(row.Answers))
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) CountCorrectAnswersByUser(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.UserID == nil || *row.UserID != userID {
			continue
		}
		for _, a := range row.Answers {
			if a.IsCorrect {
				n++
			}
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) CountPerfectByUser(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if row.UserID != nil && *row.UserID == userID && row.IsPerfect() {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubmissionRepo) CategoryAverages(userID string) ([]repository.CategoryAverage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sums := make(map[model.Category]*repository.CategoryAverage)
	for _, row := range r.rows {
		if row.UserID == nil || *row.UserID != userID || row.Category == nil {
			continue
		}
		agg, ok := sums[*row.Category]
		if !ok {
			agg = &repository.CategoryAverage{Category: *row.Category}
			sums[*row.Category] = agg
		}
		agg.AverageScore += float64(row.Score)
		agg.Submissions++
	}
	var out []repository.CategoryAverage
	for _, agg := range sums {
		agg.AverageScore /= float64(agg.Submissions)
		out = append(out, *agg)
	}
	return out, nil
}

type fakeAchievementRepo struct {
	mu           sync.Mutex
	achievements []model.Achievement
	grants       map[string]map[uint]model.UserAchievement
	nextID       uint
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{
		grants: make(map[string]map[uint]model.UserAchievement),
		nextID: 1,
	}
}

func (r *fakeAchievementRepo) Create(achievement *model.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	achievement.ID = r.nextID
	r.nextID++
	r.achievements = append(r.achievements, *achievement)
	return nil
}

func (r *fakeAchievementRepo) FindAll() ([]model.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Achievement(nil), r.achievements...), nil
}

func (r *fakeAchievementRepo) FindByName(name string) (*model.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.achievements {
		if a.Name == name {
			cp := a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAchievementRepo) GrantIfAbsent(userID string, achievementID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	userGrants, ok := r.grants[userID]
	if !ok {
		userGrants = make(map[uint]model.UserAchievement)
		r.grants[userID] = userGrants
	}
	if _, exists := userGrants[achievementID]; exists {
		return false, nil
	}
	userGrants[achievementID] = model.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	return true, nil
}

func (r *fakeAchievementRepo) FindGrantsByUser(userID string) ([]model.UserAchievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.UserAchievement
	for _, g := range r.grants[userID] {
		for _, a := range r.achievements {
			if a.ID == g.AchievementID {
				g.Achievement = a
			}
		}
		out = append(out, g)
	}
	return out, nil
}

// makeQuestion builds an active question whose answers get IDs base+1..base+n;
// correct marks which positions (1-based) are the answer key.
func makeQuestion(id uint, base uint, numAnswers int, correct ...int) model.Question {
	correctSet := make(map[int]bool, len(correct))
	for _, c := range correct {
		correctSet[c] = true
	}
	q := model.Question{
		ID:         id,
		Text:       fmt.Sprintf("question %d", id),
		Category:   model.CategoryCriminal,
		Difficulty: model.DifficultyMedium,
		IsActive:   true,
	}
	for i := 1; i <= numAnswers; i++ {
		q.Answers = append(q.Answers, model.Answer{
			ID:         base + uint(i),
			QuestionID: id,
			Text:       fmt.Sprintf("answer %d", i),
			IsCorrect:  correctSet[i],
		})
	}
	return q
}
