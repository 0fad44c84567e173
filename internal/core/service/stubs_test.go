package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/surveykit/questionnaire/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories. Each one clones on the way in and out so the
// services cannot mutate stored state by accident.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users     map[int64]*domain.User
	nextID    int64
	createErr error
	updateErr error
	updates   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.updates++
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubQuestionRepo struct {
	questions map[int64]*domain.Question
	nextID    int64
	finds     int
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: make(map[int64]*domain.Question)}
}

func (r *stubQuestionRepo) Create(_ context.Context, q *domain.Question) error {
	r.nextID++
	q.ID = r.nextID
	clone := *q
	r.questions[q.ID] = &clone
	return nil
}

func (r *stubQuestionRepo) FindByID(_ context.Context, id int64) (*domain.Question, error) {
	r.finds++
	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	clone := *q
	return &clone, nil
}

func (r *stubQuestionRepo) List(_ context.Context) ([]*domain.Question, error) {
	out := make([]*domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		clone := *q
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubQuestionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.questions[id]; !ok {
		return domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return nil
}

type stubAnswerRepo struct {
	answers map[int64]*domain.Answer
	nextID  int64
}

func newStubAnswerRepo() *stubAnswerRepo {
	return &stubAnswerRepo{answers: make(map[int64]*domain.Answer)}
}

func (r *stubAnswerRepo) Create(_ context.Context, a *domain.Answer) error {
	r.nextID++
	a.ID = r.nextID
	clone := *a
	r.answers[a.ID] = &clone
	return nil
}

func (r *stubAnswerRepo) FindByID(_ context.Context, id int64) (*domain.Answer, error) {
	a, ok := r.answers[id]
	if !ok {
		return nil, domain.ErrAnswerNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAnswerRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Answer, error) {
	var out []*domain.Answer
	for _, a := range r.answers {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAnswerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.answers[id]; !ok {
		return domain.ErrAnswerNotFound
	}
	delete(r.answers, id)
	return nil
}

// stubReportRepo keeps the answer set as a map so it has set semantics like
// the real join table.
type stubReportRepo struct {
	reports map[int64]*domain.Report
	members map[int64]map[int64]struct{}
	answers *stubAnswerRepo
	nextID  int64
}

func newStubReportRepo(answers *stubAnswerRepo) *stubReportRepo {
	return &stubReportRepo{
		reports: make(map[int64]*domain.Report),
		members: make(map[int64]map[int64]struct{}),
		answers: answers,
	}
}

func (r *stubReportRepo) Create(_ context.Context, rep *domain.Report) error {
	r.nextID++
	rep.ID = r.nextID
	clone := *rep
	clone.AnswerIDs = nil
	r.reports[rep.ID] = &clone
	r.members[rep.ID] = make(map[int64]struct{})
	return nil
}

func (r *stubReportRepo) FindByID(_ context.Context, id int64) (*domain.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	clone := *rep
	clone.AnswerIDs = r.memberIDs(id)
	return &clone, nil
}

func (r *stubReportRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Report, error) {
	var out []*domain.Report
	for id, rep := range r.reports {
		if rep.UserID == userID {
			clone := *rep
			clone.AnswerIDs = r.memberIDs(id)
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubReportRepo) AddAnswer(_ context.Context, reportID, answerID int64) (bool, error) {
	set, ok := r.members[reportID]
	if !ok {
		return false, domain.ErrReportNotFound
	}
	if _, dup := set[answerID]; dup {
		return false, nil
	}
	set[answerID] = struct{}{}
	return true, nil
}

func (r *stubReportRepo) Answers(ctx context.Context, reportID int64) ([]*domain.Answer, error) {
	var out []*domain.Answer
	for _, id := range r.memberIDs(reportID) {
		a, err := r.answers.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *stubReportRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.reports[id]; !ok {
		return domain.ErrReportNotFound
	}
	delete(r.reports, id)
	delete(r.members, id)
	return nil
}

func (r *stubReportRepo) memberIDs(reportID int64) []int64 {
	ids := make([]int64, 0, len(r.members[reportID]))
	for id := range r.members[reportID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type stubQuestionCache struct {
	entries     map[int64]*domain.Question
	getErr      error
	invalidated []int64
}

func newStubQuestionCache() *stubQuestionCache {
	return &stubQuestionCache{entries: make(map[int64]*domain.Question)}
}

func (c *stubQuestionCache) Get(_ context.Context, id int64) (*domain.Question, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	q, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	clone := *q
	return &clone, true, nil
}

func (c *stubQuestionCache) Set(_ context.Context, q *domain.Question) error {
	clone := *q
	c.entries[q.ID] = &clone
	return nil
}

func (c *stubQuestionCache) Invalidate(_ context.Context, id int64) error {
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}
