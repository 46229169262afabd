package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMail struct {
	to, subject, body string
}

type fakeSender struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]bool
}

func (s *fakeSender) Send(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failTo[to] {
		return errors.New("mailbox unavailable")
	}
	s.sent = append(s.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testWishes(movie *entity.Movie, emails ...string) []*entity.WishWithOwner {
	wishes := make([]*entity.WishWithOwner, 0, len(emails))
	for _, email := range emails {
		wishes = append(wishes, &entity.WishWithOwner{
			UserWishes: entity.UserWishes{
				ID:      uuid.New(),
				UserID:  uuid.New(),
				MovieID: movie.ID,
				Added:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			Username:   email,
			Email:      email,
			MovieTitle: movie.Title,
		})
	}
	return wishes
}

func TestNewNotificationBatch_Snapshots(t *testing.T) {
	movie := &entity.Movie{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Title: "Heat"}
	wishes := testWishes(movie, "a@example.com")
	wishes[0].MovieTitle = ""

	batch := NewNotificationBatch(movie, wishes)

	assert.Equal(t, movie.ID.String(), batch.MovieID)
	require.Len(t, batch.Wishes, 1)
	assert.Equal(t, "Heat", batch.Wishes[0].Movie.Title)
	assert.Equal(t, "a@example.com", batch.Wishes[0].User.Email)
	assert.Equal(t, "2024-03-01", batch.Wishes[0].Added)
}

func TestProcess_FailedEntryDoesNotStopBatch(t *testing.T) {
	movie := &entity.Movie{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Title: "Heat"}
	sender := &fakeSender{failTo: map[string]bool{"b@example.com": true}}
	worker := NewNotificationWorker(sender, zap.NewNop())

	var completed []BatchResult
	worker.OnComplete = func(_ NotificationBatch, result BatchResult) {
		completed = append(completed, result)
	}

	batch := NewNotificationBatch(movie, testWishes(movie, "a@example.com", "b@example.com", "c@example.com"))
	result := worker.Process(context.Background(), batch)

	assert.Equal(t, BatchResult{Total: 3, Sent: 2, Failed: 1}, result)
	assert.Equal(t, []BatchResult{result}, completed)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "a@example.com", sender.sent[0].to)
	assert.Equal(t, "c@example.com", sender.sent[1].to)
	assert.Equal(t, "Notification", sender.sent[0].subject)
	assert.Equal(t, `The movie: "Heat" was updated to which you were subscribed`, sender.sent[0].body)
}

func TestHandle_AcksMalformedPayload(t *testing.T) {
	sender := &fakeSender{}
	worker := NewNotificationWorker(sender, zap.NewNop())

	err := worker.Handle(message.NewMessage(watermill.NewUUID(), []byte(`{"wishes": [`)))

	assert.NoError(t, err)
	assert.Zero(t, sender.count())
}

func TestQueue_DeliversDispatchedBatch(t *testing.T) {
	cfg := DefaultQueueConfig()
	cfg.CloseTimeout = time.Second
	cfg.RetryMaxRetries = 0

	queue, err := NewQueue(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = queue.Close() })

	sender := &fakeSender{}
	worker := NewNotificationWorker(sender, zap.NewNop())
	done := make(chan BatchResult, 1)
	worker.OnComplete = func(_ NotificationBatch, result BatchResult) {
		done <- result
	}

	const topic = "movie.updated.test"
	queue.Consume("test-notifications", topic, worker.Handle)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, queue.Start(ctx))

	movie := &entity.Movie{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Title: "Alien"}
	dispatcher := NewDispatcher(queue.Publisher(), topic, zap.NewNop())

	// Dispatch returns without waiting for the worker
	require.NoError(t, dispatcher.Dispatch(context.Background(), movie, testWishes(movie, "a@example.com", "b@example.com")))

	select {
	case result := <-done:
		assert.Equal(t, BatchResult{Total: 2, Sent: 2}, result)
	case <-time.After(5 * time.Second):
		t.Fatal("notification batch was not processed")
	}
	assert.Equal(t, 2, sender.count())
}
