package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

var ErrRunNotFound = errors.New("extraction run not found")

const schema = `
CREATE TABLE IF NOT EXISTS extraction_runs (
	id TEXT PRIMARY KEY,
	client TEXT NOT NULL,
	document_count INTEGER NOT NULL,
	trade_count INTEGER NOT NULL,
	result_json TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	source_file TEXT NOT NULL,
	source_sha256 TEXT NOT NULL,
	description TEXT NOT NULL,
	security_identifier TEXT,
	date_sold TEXT,
	proceeds_gross REAL,
	cost_basis REAL,
	realized_gain_loss REAL NOT NULL,
	holding_period TEXT NOT NULL,
	form_8949_box TEXT NOT NULL,
	trade_json TEXT NOT NULL,
	FOREIGN KEY(run_id) REFERENCES extraction_runs(id)
);

CREATE INDEX IF NOT EXISTS idx_trades_run_id ON trades(run_id, position);
`

// Run is a persisted extraction result.
type Run struct {
	ID        string
	Client    string
	CreatedAt time.Time
	Result    *dto.ExtractionResult
}

// SQLiteStore keeps extraction runs and their trades in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at path (":memory:" works) and creates the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	// A single connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	zap.L().Info("database ready", zap.String("path", path))
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun stores the result and each of its trades under a new run ID.
func (s *SQLiteStore) SaveRun(ctx context.Context, result *dto.ExtractionResult) (string, error) {
	if result == nil {
		return "", errors.New("nil extraction result")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}

	runID := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO extraction_runs (id, client, document_count, trade_count, result_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, result.Client, len(result.Documents), len(result.Brokerage1099Trades), string(payload), createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trades (run_id, position, source_file, source_sha256, description, security_identifier,
			date_sold, proceeds_gross, cost_basis, realized_gain_loss, holding_period, form_8949_box, trade_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare trade insert: %w", err)
	}
	defer stmt.Close()

	for i, trade := range result.Brokerage1099Trades {
		tradeJSON, err := json.Marshal(trade)
		if err != nil {
			return "", fmt.Errorf("failed to encode trade %d: %w", i, err)
		}

		var dateSold sql.NullString
		if trade.DateSold != nil {
			dateSold = sql.NullString{String: trade.DateSold.Format(dto.DateLayout), Valid: true}
		}

		_, err = stmt.ExecContext(ctx,
			runID, i, trade.SourceFile, trade.SourceSHA256, trade.Description,
			nullString(trade.SecurityIdentifier), dateSold,
			nullFloat(trade.ProceedsGross), nullFloat(trade.CostBasis),
			trade.RealizedGainLoss, string(trade.HoldingPeriod), trade.Form8949Box, string(tradeJSON),
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert trade %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	zap.L().Debug("extraction run saved",
		zap.String("run_id", runID),
		zap.Int("trades", len(result.Brokerage1099Trades)),
	)
	return runID, nil
}

// GetRun loads a stored run by ID.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	var (
		client    string
		payload   string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT client, result_json, created_at FROM extraction_runs WHERE id = ?`, runID,
	).Scan(&client, &payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run %s: %w", runID, err)
	}

	var result dto.ExtractionResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode run %s: %w", runID, err)
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of run %s: %w", runID, err)
	}

	return &Run{
		ID:        runID,
		Client:    client,
		CreatedAt: created,
		Result:    &result,
	}, nil
}

// ListTrades returns the trades of a run in statement order.
func (s *SQLiteStore) ListTrades(ctx context.Context, runID string) ([]dto.TradeRecord, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM extraction_runs WHERE id = ?`, runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run %s: %w", runID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT trade_json FROM trades WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades of run %s: %w", runID, err)
	}
	defer rows.Close()

	trades := []dto.TradeRecord{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		var trade dto.TradeRecord
		if err := json.Unmarshal([]byte(payload), &trade); err != nil {
			return nil, fmt.Errorf("failed to decode trade: %w", err)
		}
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trades: %w", err)
	}
	return trades, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
