package triage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rescuelink/rescuelink/internal/domain"
	pb "github.com/rescuelink/rescuelink/internal/proto/triage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

var (
	errConnectionShutdown       = errors.New("connection shutdown")
	errConnectionStateUnchanged = errors.New("connection state did not change")
)

// GrpcClient provides a gRPC client to the triage classification service.
type GrpcClient struct {
	conn           *grpc.ClientConn
	client         pb.TriageServiceClient
	addr           string
	requestTimeout time.Duration
	logger         *slog.Logger
}

// GrpcClientConfig holds configuration for the gRPC client.
type GrpcClientConfig struct {
	Address          string
	ConnectTimeout   time.Duration
	RequestTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

// DefaultGrpcClientConfig returns default configuration.
func DefaultGrpcClientConfig() GrpcClientConfig {
	return GrpcClientConfig{
		Address:          "localhost:50051",
		ConnectTimeout:   5 * time.Second,
		RequestTimeout:   10 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// NewGrpcClient creates a new gRPC client to the triage service.
func NewGrpcClient(cfg GrpcClientConfig, logger *slog.Logger) (*GrpcClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	defaults := DefaultGrpcClientConfig()
	if cfg.Address == "" {
		cfg.Address = defaults.Address
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaults.ConnectTimeout
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}
	if cfg.KeepaliveTime <= 0 {
		cfg.KeepaliveTime = defaults.KeepaliveTime
	}
	if cfg.KeepaliveTimeout <= 0 {
		cfg.KeepaliveTimeout = defaults.KeepaliveTimeout
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	// Build client connection (no network I/O yet).
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to triage service at %s: %w", cfg.Address, err)
	}

	// Force a connection attempt during startup so we fail fast on bad
	// endpoints and the caller can run with triage disabled.
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := waitForReady(connectCtx, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("failed to close gRPC connection after readiness failure", "error", closeErr)
		}
		return nil, fmt.Errorf("triage service at %s not ready: %w", cfg.Address, err)
	}

	logger.Info("Connected to triage service", "address", cfg.Address)

	return &GrpcClient{
		conn:           conn,
		client:         pb.NewTriageServiceClient(conn),
		addr:           cfg.Address,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Idle:
			conn.Connect()
		case connectivity.Shutdown:
			return errConnectionShutdown
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w from %s", errConnectionStateUnchanged, state)
		}
	}
}

// Close closes the gRPC connection.
func (c *GrpcClient) Close() {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("failed to close gRPC connection", "error", err)
		}
	}
}

// Health checks if the triage service is healthy.
func (c *GrpcClient) Health(ctx context.Context) error {
	if _, err := c.client.Health(ctx, &pb.HealthRequest{}); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// Classify scores a free-text report. The response is normalized: unknown
// categories collapse to "other" and the priority score is clamped to the
// service's documented 0-1000 range.
func (c *GrpcClient) Classify(ctx context.Context, text string) (*Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.client.Classify(ctx, &pb.ClassifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("classify request failed: %w", err)
	}

	category := strings.ToLower(strings.TrimSpace(resp.GetCategory()))
	if !domain.KnownCategory(category) {
		c.logger.Debug("triage returned unknown category", "category", resp.GetCategory())
		category = domain.CategoryOther
	}

	score := int(resp.GetPriorityScore())
	if score < 0 {
		score = 0
	}
	if score > 1000 {
		score = 1000
	}

	return &Assessment{
		Category:      category,
		PriorityScore: score,
		Rationale:     resp.GetRationale(),
	}, nil
}
