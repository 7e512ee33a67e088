package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repository"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	mu      sync.Mutex
	outputs []string
	err     error
	calls   int
}

func (g *fakeGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	if len(g.outputs) == 0 {
		return "", errors.New("no scripted output")
	}
	out := g.outputs[0]
	if len(g.outputs) > 1 {
		g.outputs = g.outputs[1:]
	}
	return out, nil
}

func (g *fakeGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews map[string]*model.Interview
	createErr  error
	setErr     error
}

func newFakeInterviewRepo(interviews ...*model.Interview) *fakeInterviewRepo {
	r := &fakeInterviewRepo{interviews: map[string]*model.Interview{}}
	for _, iv := range interviews {
		r.interviews[iv.RoomID] = iv
	}
	return r
}

func (r *fakeInterviewRepo) Create(_ context.Context, interview *model.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	stored := *interview
	stored.Questions = slices.Clone(interview.Questions)
	r.interviews[interview.RoomID] = &stored
	return nil
}

func (r *fakeInterviewRepo) FindByRoomID(_ context.Context, roomID string) (*model.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.interviews[roomID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *iv
	out.Questions = slices.Clone(iv.Questions)
	return &out, nil
}

func (r *fakeInterviewRepo) SetQuestionsIfEmpty(_ context.Context, roomID string, questions []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setErr != nil {
		return nil, r.setErr
	}
	iv, ok := r.interviews[roomID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if !iv.HasQuestions() {
		iv.Questions = slices.Clone(questions)
	}
	return slices.Clone(iv.Questions), nil
}

// stored returns the persisted questions of a room.
func (r *fakeInterviewRepo) stored(roomID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if iv, ok := r.interviews[roomID]; ok {
		return slices.Clone(iv.Questions)
	}
	return nil
}

type fakeResponseRepo struct {
	mu      sync.Mutex
	records []model.InterviewResponse
}

func (r *fakeResponseRepo) Create(_ context.Context, response *model.InterviewResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	response.ID = uint(len(r.records) + 1)
	response.CreatedAt = time.Now()
	r.records = append(r.records, *response)
	return nil
}

func (r *fakeResponseRepo) FindByRoomID(_ context.Context, roomID string) ([]model.InterviewResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.InterviewResponse
	for _, rec := range r.records {
		if rec.RoomID == roomID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeApplicationRepo serves FindByID only; the embedded interface panics on anything else.
type fakeApplicationRepo struct {
	repository.ApplicationRepository
	apps map[uint]*model.JobApplication
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id uint) (*model.JobApplication, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return app, nil
}

// fakeLocker grants the lock once per key until released.
type fakeLocker struct {
	mu      sync.Mutex
	held    map[string]bool
	denyAll bool
	err     error
}

func (l *fakeLocker) TryLock(_ context.Context, key string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, false, l.err
	}
	if l.denyAll || l.held[key] {
		return nil, false, nil
	}
	if l.held == nil {
		l.held = map[string]bool{}
	}
	l.held[key] = true
	return func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
	}, true, nil
}

type fakeMailer struct {
	sent []Mail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, mail Mail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, mail)
	return nil
}
