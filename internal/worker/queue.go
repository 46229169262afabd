package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/zap"
)

type QueueConfig struct {
	// Buffer is the per-subscriber output buffer of the in-process pubsub.
	Buffer int64

	CloseTimeout time.Duration

	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
}

func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		Buffer:               256,
		CloseTimeout:         30 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: time.Second,
		RetryMaxInterval:     30 * time.Second,
	}
}

// Queue is an in-process pubsub with a watermill router consuming it.
// Publishing never waits for a consumer to acknowledge.
type Queue struct {
	pubSub *gochannel.GoChannel
	router *message.Router
	logger watermill.LoggerAdapter
	log    *zap.Logger
}

func NewQueue(cfg QueueConfig, log *zap.Logger) (*Queue, error) {
	logger := NewZapLoggerAdapter(log.With(zap.String("component", "watermill")))

	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            cfg.Buffer,
		BlockPublishUntilSubscriberAck: false,
	}, logger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)

	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      2.0,
		Logger:          logger,
	}
	router.AddMiddleware(retry.Middleware)

	return &Queue{
		pubSub: pubSub,
		router: router,
		logger: logger,
		log:    log.With(zap.String("worker", "queue")),
	}, nil
}

func (q *Queue) Publisher() message.Publisher {
	return q.pubSub
}

// Consume registers handler for topic. Must be called before Run.
func (q *Queue) Consume(name, topic string, handler message.NoPublishHandlerFunc) {
	q.router.AddConsumerHandler(name, topic, q.pubSub, handler)
}

// Run blocks until ctx is cancelled or the router is closed.
func (q *Queue) Run(ctx context.Context) error {
	return q.router.Run(ctx)
}

// Start runs the router in the background and returns once it is
// accepting messages.
func (q *Queue) Start(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		errs <- q.Run(ctx)
	}()

	select {
	case <-q.router.Running():
		go func() {
			if err := <-errs; err != nil {
				q.log.Error("Queue router stopped", zap.Error(err))
			}
		}()
		return nil
	case err := <-errs:
		if err == nil {
			err = errors.New("router exited before running")
		}
		return fmt.Errorf("start queue router: %w", err)
	}
}

func (q *Queue) Close() error {
	if err := q.router.Close(); err != nil {
		return fmt.Errorf("close router: %w", err)
	}
	return q.pubSub.Close()
}
