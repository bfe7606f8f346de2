// Package nats forwards catalog events to NATS JetStream.
package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/narwhalmedia/tracker/pkg/interfaces"
)

// Config holds the connection settings.
type Config struct {
	URL           string
	ClientName    string
	StreamName    string
	Subjects      []string
	MaxReconnect  int
	ReconnectWait time.Duration
}

// Client wraps NATS and JetStream connections
type Client struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger interfaces.Logger
	stream string
}

// NewClient connects to NATS and makes sure the catalog stream exists.
func NewClient(cfg Config, logger interfaces.Logger) (*Client, func(), error) {
	if cfg.MaxReconnect == 0 {
		cfg.MaxReconnect = 10
	}
	if cfg.ReconnectWait == 0 {
		cfg.ReconnectWait = 2 * time.Second
	}

	opts := []nats.Option{
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(cfg.MaxReconnect),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", interfaces.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", interfaces.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{
		nc:     nc,
		js:     js,
		logger: logger.WithFields(interfaces.String("component", "nats")),
		stream: cfg.StreamName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.initializeStream(ctx, cfg.Subjects); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to initialize stream: %w", err)
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("failed to drain NATS connection", interfaces.Error(err))
		}
	}

	logger.Info("NATS client initialized",
		interfaces.String("url", cfg.URL),
		interfaces.String("stream", cfg.StreamName))

	return client, cleanup, nil
}

func (c *Client) initializeStream(ctx context.Context, subjects []string) error {
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:         c.stream,
		Description:  "Catalog media events",
		Subjects:     subjects,
		Retention:    jetstream.LimitsPolicy,
		MaxAge:       30 * 24 * time.Hour,
		MaxConsumers: -1,
		Replicas:     1,
		Storage:      jetstream.FileStorage,
		Discard:      jetstream.DiscardOld,
		MaxMsgs:      -1,
		MaxBytes:     -1,
		Duplicates:   2 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s stream: %w", c.stream, err)
	}
	return nil
}

// Publish sends data to subject. msgID is used for JetStream deduplication.
func (c *Client) Publish(ctx context.Context, subject, msgID string, data []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := c.js.Publish(pubCtx, subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		c.logger.Error("failed to publish event",
			interfaces.Error(err),
			interfaces.String("subject", subject))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	c.logger.Debug("event published",
		interfaces.String("subject", subject),
		interfaces.Any("sequence", ack.Sequence),
		interfaces.Bool("duplicate", ack.Duplicate))
	return nil
}

// Name identifies the broker in metrics.
func (c *Client) Name() string {
	return "nats"
}

// IsConnected checks if the client is connected
func (c *Client) IsConnected() bool {
	return c.nc.IsConnected()
}

// Close closes the NATS connection
func (c *Client) Close() error {
	if c.nc != nil {
		c.nc.Close()
	}
	return nil
}
