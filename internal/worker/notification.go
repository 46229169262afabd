package worker

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/metrics"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const notificationSubject = "Notification"

type UserSnapshot struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type MovieSnapshot struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// WishSnapshot is a wishlist entry captured at update time, so later
// changes to the row do not alter what gets sent.
type WishSnapshot struct {
	ID    string        `json:"id"`
	Movie MovieSnapshot `json:"movie"`
	User  UserSnapshot  `json:"user"`
	Added string        `json:"added"`
}

// NotificationBatch is the queue payload for one movie update.
type NotificationBatch struct {
	MovieID   string         `json:"movie_id"`
	Wishes    []WishSnapshot `json:"wishes"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewNotificationBatch snapshots wishes for movie.
func NewNotificationBatch(movie *entity.Movie, wishes []*entity.WishWithOwner) NotificationBatch {
	batch := NotificationBatch{
		MovieID:   movie.ID.String(),
		Wishes:    make([]WishSnapshot, 0, len(wishes)),
		CreatedAt: time.Now().UTC(),
	}

	for _, wish := range wishes {
		title := wish.MovieTitle
		if title == "" {
			title = movie.Title
		}
		batch.Wishes = append(batch.Wishes, WishSnapshot{
			ID:    wish.ID.String(),
			Movie: MovieSnapshot{ID: wish.MovieID.String(), Title: title},
			User: UserSnapshot{
				ID:       wish.UserID.String(),
				Username: wish.Username,
				Email:    wish.Email,
			},
			Added: wish.Added.Format("2006-01-02"),
		})
	}

	return batch
}

// Dispatcher publishes notification batches to the queue.
type Dispatcher struct {
	publisher message.Publisher
	topic     string
	log       *zap.Logger
}

func NewDispatcher(publisher message.Publisher, topic string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		publisher: publisher,
		topic:     topic,
		log:       log.With(zap.String("worker", "dispatcher")),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, movie *entity.Movie, wishes []*entity.WishWithOwner) error {
	batch := NewNotificationBatch(movie, wishes)

	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal notification batch: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("movie_id", batch.MovieID)

	if err := d.publisher.Publish(d.topic, msg); err != nil {
		return fmt.Errorf("publish notification batch: %w", err)
	}

	metrics.NotificationBatchesPublished.Inc()
	d.log.Debug("Notification batch published",
		zap.String("message_id", msg.UUID),
		zap.String("movie_id", batch.MovieID),
		zap.Int("entries", len(batch.Wishes)),
	)

	return nil
}

// Sender delivers one notification message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender writes notifications to the log instead of mailing them.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("sender", "log"))}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.log.Info("Notification",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender mails notifications through a relay.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := "From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body + "\r\n"

	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg))
}

// BatchResult summarises one processed batch.
type BatchResult struct {
	Total  int
	Sent   int
	Failed int
}

// NotificationWorker consumes notification batches.
type NotificationWorker struct {
	sender Sender
	log    *zap.Logger

	// OnComplete, when set, is called after each batch.
	OnComplete func(NotificationBatch, BatchResult)
}

func NewNotificationWorker(sender Sender, log *zap.Logger) *NotificationWorker {
	return &NotificationWorker{
		sender: sender,
		log:    log.With(zap.String("worker", "notification")),
	}
}

// Process sends one message per entry. A failed entry is logged and
// counted; it never stops the rest of the batch.
func (w *NotificationWorker) Process(ctx context.Context, batch NotificationBatch) BatchResult {
	result := BatchResult{Total: len(batch.Wishes)}

	for _, wish := range batch.Wishes {
		body := fmt.Sprintf("The movie: %q was updated to which you were subscribed", wish.Movie.Title)
		if err := w.sender.Send(ctx, wish.User.Email, notificationSubject, body); err != nil {
			result.Failed++
			w.log.Error("Failed to send notification",
				zap.Error(err),
				zap.String("wish_id", wish.ID),
				zap.String("email", wish.User.Email),
			)
			continue
		}
		result.Sent++
	}

	metrics.RecordNotificationBatch(result.Sent, result.Failed)
	w.log.Info("Notification batch processed",
		zap.String("movie_id", batch.MovieID),
		zap.Int("total", result.Total),
		zap.Int("sent", result.Sent),
		zap.Int("failed", result.Failed),
	)

	if w.OnComplete != nil {
		w.OnComplete(batch, result)
	}
	return result
}

// Handle is the watermill consumer. Undecodable payloads are logged and
// acknowledged so they are not redelivered forever.
func (w *NotificationWorker) Handle(msg *message.Message) error {
	var batch NotificationBatch
	if err := json.Unmarshal(msg.Payload, &batch); err != nil {
		w.log.Error("Dropping malformed notification batch",
			zap.Error(err),
			zap.String("message_id", msg.UUID),
		)
		return nil
	}

	w.Process(msg.Context(), batch)
	return nil
}
