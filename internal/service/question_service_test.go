package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/auriter/internal/model"
	"github.com/lshigami/auriter/internal/repair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeQuestions = `Sure! Here are the questions:
["How do goroutines differ from threads?", "What is a channel?", "Describe a deadlock you debugged."]`

var parsedThree = []string{
	"How do goroutines differ from threads?",
	"What is a channel?",
	"Describe a deadlock you debugged.",
}

func newTestQuestionService(gen *fakeGenerator, repo *fakeInterviewRepo, locker *fakeLocker) *questionService {
	return &questionService{
		generator:     gen,
		interviewRepo: repo,
		locker:        locker,
		pollInterval:  time.Millisecond,
		waitLimit:     50 * time.Millisecond,
	}
}

func TestQuestionsForSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("supplied questions skip generation", func(t *testing.T) {
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, newFakeInterviewRepo(), &fakeLocker{})

		set := svc.QuestionsForSchedule(ctx, "Go Developer", "desc", []string{" Why Go? ", "", "Explain GC."})

		assert.Equal(t, SourceSupplied, set.Source)
		assert.Equal(t, []string{"Why Go?", "Explain GC."}, set.Questions)
		assert.Zero(t, gen.Calls())
	})

	t.Run("generated questions are extracted from prose", func(t *testing.T) {
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, newFakeInterviewRepo(), &fakeLocker{})

		set := svc.QuestionsForSchedule(ctx, "Go Developer", "desc", nil)

		assert.Equal(t, SourceGenerated, set.Source)
		assert.Equal(t, parsedThree, set.Questions)
		assert.Empty(t, set.Warning)
	})

	t.Run("generator failure uses schedule bank", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		svc := newTestQuestionService(gen, newFakeInterviewRepo(), &fakeLocker{})

		set := svc.QuestionsForSchedule(ctx, "Go Developer", "desc", nil)

		assert.Equal(t, SourceFallback, set.Source)
		assert.Equal(t, scheduleFallbackQuestions, set.Questions)
		assert.NotEmpty(t, set.Warning)
	})

	t.Run("unparsable output uses default bank", func(t *testing.T) {
		gen := &fakeGenerator{outputs: []string{"I cannot help with that."}}
		svc := newTestQuestionService(gen, newFakeInterviewRepo(), &fakeLocker{})

		set := svc.QuestionsForSchedule(ctx, "Go Developer", "desc", nil)

		assert.Equal(t, SourceFallback, set.Source)
		assert.Equal(t, repair.DefaultQuestions, set.Questions)
		assert.Equal(t, warnUnparsable, set.Warning)
	})

	t.Run("fallback is a copy", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("down")}
		svc := newTestQuestionService(gen, newFakeInterviewRepo(), &fakeLocker{})

		set := svc.QuestionsForSchedule(ctx, "Go Developer", "desc", nil)
		set.Questions[0] = "mutated"

		assert.NotEqual(t, "mutated", scheduleFallbackQuestions[0])
	})
}

func TestQuestionsForFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("stored questions are returned unchanged", func(t *testing.T) {
		iv := &model.Interview{RoomID: "r1", Document: "doc", Questions: []string{"Q1", "Q2"}}
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, newFakeInterviewRepo(iv), &fakeLocker{})

		set, err := svc.QuestionsForFetch(ctx, iv)

		require.NoError(t, err)
		assert.Equal(t, SourceStored, set.Source)
		assert.Equal(t, []string{"Q1", "Q2"}, set.Questions)
		assert.Zero(t, gen.Calls())
	})

	t.Run("no document uses static bank without storing", func(t *testing.T) {
		iv := &model.Interview{RoomID: "r1"}
		repo := newFakeInterviewRepo(iv)
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{})

		set, err := svc.QuestionsForFetch(ctx, iv)

		require.NoError(t, err)
		assert.Equal(t, SourceFallback, set.Source)
		assert.Equal(t, noDocumentQuestions, set.Questions)
		assert.Empty(t, repo.stored("r1"))
		assert.Zero(t, gen.Calls())
	})

	t.Run("first fetch generates and stores, second returns stored", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "Go backend role"})
		gen := &fakeGenerator{outputs: []string{threeQuestions, `["Something else entirely?"]`}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{})

		first, _ := repo.FindByRoomID(ctx, "r1")
		set1, err := svc.QuestionsForFetch(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, SourceGenerated, set1.Source)
		assert.Equal(t, parsedThree, set1.Questions)

		second, _ := repo.FindByRoomID(ctx, "r1")
		set2, err := svc.QuestionsForFetch(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, SourceStored, set2.Source)
		assert.Equal(t, set1.Questions, set2.Questions)
		assert.Equal(t, 1, gen.Calls())
	})

	t.Run("losing writer returns the stored list", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc", Questions: []string{"Winner?"}})
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{})

		stale := &model.Interview{RoomID: "r1", Document: "doc"}
		set, err := svc.QuestionsForFetch(ctx, stale)

		require.NoError(t, err)
		assert.Equal(t, SourceStored, set.Source)
		assert.Equal(t, []string{"Winner?"}, set.Questions)
	})

	t.Run("waits for the lock holder's result", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc", Questions: []string{"From holder?"}})
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{denyAll: true})

		set, err := svc.QuestionsForFetch(ctx, &model.Interview{RoomID: "r1", Document: "doc"})

		require.NoError(t, err)
		assert.Equal(t, SourceStored, set.Source)
		assert.Equal(t, []string{"From holder?"}, set.Questions)
		assert.Zero(t, gen.Calls())
	})

	t.Run("generates after lock wait times out", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc"})
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{denyAll: true})

		set, err := svc.QuestionsForFetch(ctx, &model.Interview{RoomID: "r1", Document: "doc"})

		require.NoError(t, err)
		assert.Equal(t, SourceGenerated, set.Source)
		assert.Equal(t, parsedThree, repo.stored("r1"))
	})

	t.Run("lock errors do not block generation", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc"})
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{err: errors.New("redis down")})

		set, err := svc.QuestionsForFetch(ctx, &model.Interview{RoomID: "r1", Document: "doc"})

		require.NoError(t, err)
		assert.Equal(t, SourceGenerated, set.Source)
	})

	t.Run("generator failure is not stored", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc"})
		gen := &fakeGenerator{err: errors.New("timeout")}
		svc := newTestQuestionService(gen, repo, &fakeLocker{})

		set, err := svc.QuestionsForFetch(ctx, &model.Interview{RoomID: "r1", Document: "doc"})

		require.NoError(t, err)
		assert.Equal(t, SourceFallback, set.Source)
		assert.Equal(t, documentFallbackQuestions, set.Questions)
		assert.Empty(t, repo.stored("r1"))
	})

	t.Run("store failure is an error", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc"})
		repo.setErr = errors.New("connection reset")
		gen := &fakeGenerator{outputs: []string{threeQuestions}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{})

		_, err := svc.QuestionsForFetch(ctx, &model.Interview{RoomID: "r1", Document: "doc"})

		assert.Error(t, err)
	})

	t.Run("concurrent fetches agree", func(t *testing.T) {
		repo := newFakeInterviewRepo(&model.Interview{RoomID: "r1", Document: "doc"})
		gen := &fakeGenerator{outputs: []string{threeQuestions, `["Other A?", "Other B?", "Other C?"]`}}
		svc := newTestQuestionService(gen, repo, &fakeLocker{})
		svc.waitLimit = time.Second

		const n = 8
		results := make([][]string, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				set, err := svc.QuestionsForFetch(ctx, &model.Interview{RoomID: "r1", Document: "doc"})
				if err == nil {
					results[i] = set.Questions
				}
			}()
		}
		wg.Wait()

		stored := repo.stored("r1")
		require.NotEmpty(t, stored)
		for _, r := range results {
			assert.Equal(t, stored, r)
		}
	})
}

func TestWithGenericQuestions(t *testing.T) {
	out := WithGenericQuestions([]string{"Technical?"})

	require.Len(t, out, len(GenericQuestions)+1)
	assert.Equal(t, GenericQuestions, out[:len(GenericQuestions)])
	assert.Equal(t, "Technical?", out[len(out)-1])
}
