package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rescuelink/rescuelink/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS responders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		coverage_area TEXT NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0,
		total_rescues INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responders_points ON responders(points DESC);

	CREATE TABLE IF NOT EXISTS sos_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		location TEXT NOT NULL,
		status TEXT NOT NULL,
		assigned_responder_id INTEGER,
		priority_score INTEGER,
		priority_reason TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_requests_status ON sos_requests(status, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_requests_user ON sos_requests(user_id, created_at DESC);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sos_request_id INTEGER NOT NULL,
		sender_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		message_type TEXT NOT NULL DEFAULT 'text',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_request ON chat_messages(sos_request_id, id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// CreateUser stores a new user and assigns its id.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, role, location, created_at) VALUES (?, ?, ?, ?)`,
		user.Username, string(user.Role), user.Location, now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("user insert id: %w", err)
	}

	created := *user
	created.ID = id
	created.CreatedAt = time.Unix(now.Unix(), 0)
	return &created, nil
}

// GetUser retrieves a user by id.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, role, location, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByUsername retrieves a user by username.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, username, role, location, created_at FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	var role string
	var createdAt int64

	err := row.Scan(&user.ID, &user.Username, &role, &user.Location, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user row: %w", err)
	}

	user.Role = domain.Role(role)
	user.CreatedAt = time.Unix(createdAt, 0)
	return &user, nil
}

// CreateResponder stores a new responder organization.
func (s *SQLiteStore) CreateResponder(ctx context.Context, responder *domain.Responder) (*domain.Responder, error) {
	now := time.Now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO responders (user_id, name, coverage_area, created_at) VALUES (?, ?, ?, ?)`,
		responder.UserID, responder.Name, responder.CoverageArea, now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert responder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("responder insert id: %w", err)
	}

	created := *responder
	created.ID = id
	created.Points = 0
	created.TotalRescues = 0
	created.CreatedAt = time.Unix(now.Unix(), 0)
	return &created, nil
}

const responderColumns = `id, user_id, name, coverage_area, points, total_rescues, created_at`

// GetResponder retrieves a responder organization by id.
func (s *SQLiteStore) GetResponder(ctx context.Context, id int64) (*domain.Responder, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+responderColumns+` FROM responders WHERE id = ?`, id)
	return scanResponder(row)
}

// GetResponderByUser retrieves the responder organization owned by a user.
func (s *SQLiteStore) GetResponderByUser(ctx context.Context, userID int64) (*domain.Responder, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+responderColumns+` FROM responders WHERE user_id = ?`, userID)
	return scanResponder(row)
}

func scanResponder(row *sql.Row) (*domain.Responder, error) {
	var responder domain.Responder
	var createdAt int64

	err := row.Scan(
		&responder.ID, &responder.UserID, &responder.Name, &responder.CoverageArea,
		&responder.Points, &responder.TotalRescues, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan responder row: %w", err)
	}

	responder.CreatedAt = time.Unix(createdAt, 0)
	return &responder, nil
}

// ListResponders returns all responder organizations sorted by points descending.
func (s *SQLiteStore) ListResponders(ctx context.Context) ([]*domain.Responder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+responderColumns+` FROM responders ORDER BY points DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query responders: %w", err)
	}
	defer closeRows(rows, "responders")

	var responders []*domain.Responder
	for rows.Next() {
		var responder domain.Responder
		var createdAt int64
		if err := rows.Scan(
			&responder.ID, &responder.UserID, &responder.Name, &responder.CoverageArea,
			&responder.Points, &responder.TotalRescues, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan responder row: %w", err)
		}
		responder.CreatedAt = time.Unix(createdAt, 0)
		responders = append(responders, &responder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responders: %w", err)
	}
	return responders, nil
}

// AddResponderReward atomically adds points and increments the rescue count.
// The read-modify-write happens inside the UPDATE so concurrent awards never
// lose increments.
func (s *SQLiteStore) AddResponderReward(ctx context.Context, responderID int64, points int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE responders SET points = points + ?, total_rescues = total_rescues + 1 WHERE id = ?`,
		points, responderID,
	)
	if err != nil {
		return fmt.Errorf("add responder reward: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("responder %d: %w", responderID, domain.ErrNotFound)
	}
	return nil
}

const requestColumns = `id, user_id, category, description, location, status,
       assigned_responder_id, priority_score, priority_reason, created_at`

// CreateRequest stores a new assistance request.
func (s *SQLiteStore) CreateRequest(ctx context.Context, request *domain.SosRequest) (*domain.SosRequest, error) {
	now := time.Now()

	var assignedID interface{}
	if request.AssignedResponderID != 0 {
		assignedID = request.AssignedResponderID
	}
	var priorityScore interface{}
	if request.PriorityScore != 0 {
		priorityScore = request.PriorityScore
	}
	var priorityReason interface{}
	if request.PriorityReason != "" {
		priorityReason = request.PriorityReason
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sos_requests
		 (user_id, category, description, location, status, assigned_responder_id, priority_score, priority_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		request.UserID, request.Category, request.Description, request.Location,
		string(request.Status), assignedID, priorityScore, priorityReason, now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert sos request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sos request insert id: %w", err)
	}

	created := *request
	created.ID = id
	created.CreatedAt = time.Unix(now.Unix(), 0)
	return &created, nil
}

// GetRequest retrieves an assistance request by id.
func (s *SQLiteStore) GetRequest(ctx context.Context, id int64) (*domain.SosRequest, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+requestColumns+` FROM sos_requests WHERE id = ?`, id)
	return scanRequest(row)
}

func scanRequest(row *sql.Row) (*domain.SosRequest, error) {
	var request domain.SosRequest
	var status string
	var assignedID, priorityScore sql.NullInt64
	var priorityReason sql.NullString
	var createdAt int64

	err := row.Scan(
		&request.ID, &request.UserID, &request.Category, &request.Description,
		&request.Location, &status, &assignedID, &priorityScore, &priorityReason, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan sos request row: %w", err)
	}

	request.Status = domain.RequestStatus(status)
	request.AssignedResponderID = assignedID.Int64
	request.PriorityScore = int(priorityScore.Int64)
	request.PriorityReason = priorityReason.String
	request.CreatedAt = time.Unix(createdAt, 0)
	return &request, nil
}

// ListRequestsByStatus returns requests in the given status, newest first.
func (s *SQLiteStore) ListRequestsByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.SosRequest, error) {
	return s.listRequests(ctx,
		`SELECT `+requestColumns+` FROM sos_requests WHERE status = ? ORDER BY created_at DESC, id DESC`,
		string(status))
}

// ListRequestsByUser returns a requester's own requests, newest first.
func (s *SQLiteStore) ListRequestsByUser(ctx context.Context, userID int64) ([]*domain.SosRequest, error) {
	return s.listRequests(ctx,
		`SELECT `+requestColumns+` FROM sos_requests WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID)
}

func (s *SQLiteStore) listRequests(ctx context.Context, query string, arg interface{}) ([]*domain.SosRequest, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query sos requests: %w", err)
	}
	defer closeRows(rows, "sos requests")

	var requests []*domain.SosRequest
	for rows.Next() {
		var request domain.SosRequest
		var status string
		var assignedID, priorityScore sql.NullInt64
		var priorityReason sql.NullString
		var createdAt int64

		if err := rows.Scan(
			&request.ID, &request.UserID, &request.Category, &request.Description,
			&request.Location, &status, &assignedID, &priorityScore, &priorityReason, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan sos request row: %w", err)
		}

		request.Status = domain.RequestStatus(status)
		request.AssignedResponderID = assignedID.Int64
		request.PriorityScore = int(priorityScore.Int64)
		request.PriorityReason = priorityReason.String
		request.CreatedAt = time.Unix(createdAt, 0)
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sos requests: %w", err)
	}
	return requests, nil
}

// CompareAndUpdateRequestStatus applies update only if the request's current
// status equals expected. The WHERE clause makes the status check and the
// write a single atomic statement: under concurrent approvals exactly one
// UPDATE matches, every other caller sees zero rows affected.
func (s *SQLiteStore) CompareAndUpdateRequestStatus(ctx context.Context, id int64, expected domain.RequestStatus, update RequestUpdate) (*domain.SosRequest, error) {
	query := `UPDATE sos_requests SET status = ?`
	args := []interface{}{string(update.Status)}

	if update.AssignedResponderID != 0 {
		query += `, assigned_responder_id = ?`
		args = append(args, update.AssignedResponderID)
	}

	query += ` WHERE id = ? AND status = ?`
	args = append(args, id, string(expected))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update sos request status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a lost race from a missing request.
		existing, err := s.GetRequest(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("sos request %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("sos request %d is %s: %w", id, existing.Status, domain.ErrAlreadyAssigned)
	}

	updated, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("sos request %d vanished after update: %w", id, domain.ErrNotFound)
	}
	return updated, nil
}

// CreateMessage stores a chat message.
func (s *SQLiteStore) CreateMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	now := time.Now()
	messageType := message.MessageType
	if messageType == "" {
		messageType = domain.MessageTypeText
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (sos_request_id, sender_id, content, message_type, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		message.SosRequestID, message.SenderID, message.Content, messageType, now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert chat message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("chat message insert id: %w", err)
	}

	created := *message
	created.ID = id
	created.MessageType = messageType
	created.CreatedAt = time.Unix(now.Unix(), 0)
	return &created, nil
}

// ListMessages returns a request's messages oldest first. Ordering by id
// keeps messages created within the same second in insertion order.
func (s *SQLiteStore) ListMessages(ctx context.Context, sosRequestID int64) ([]*domain.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sos_request_id, sender_id, content, message_type, created_at
		 FROM chat_messages WHERE sos_request_id = ? ORDER BY id ASC`,
		sosRequestID,
	)
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}
	defer closeRows(rows, "chat messages")

	var messages []*domain.ChatMessage
	for rows.Next() {
		var message domain.ChatMessage
		var createdAt int64
		if err := rows.Scan(
			&message.ID, &message.SosRequestID, &message.SenderID,
			&message.Content, &message.MessageType, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan chat message row: %w", err)
		}
		message.CreatedAt = time.Unix(createdAt, 0)
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat messages: %w", err)
	}
	return messages, nil
}

func closeRows(rows *sql.Rows, what string) {
	if err := rows.Close(); err != nil {
		slog.Warn("failed to close rows", "query", what, "error", err)
	}
}
