package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okian/giftmatch/internal/domain/assessment"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/types"
	"github.com/okian/giftmatch/pkg/metrics"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// SQLiteStore persists assessments in a SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies the schema.
func NewSQLiteStore(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	cfg := sqliteSettings{busyTimeout: 5 * time.Second, maxOpenConns: 4}
	for _, opt := range opts {
		opt(&cfg)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("repository: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repository: open database: %w", err)
	}
	if path == ":memory:" {
		// every connection would otherwise see its own empty database
		cfg.maxOpenConns = 1
	}
	db.SetMaxOpenConns(cfg.maxOpenConns)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.busyTimeout.Milliseconds()),
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("repository: pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository: migration: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	cols := make([]string, 0, types.GiftCount)
	for _, g := range types.Gifts() {
		cols = append(cols, fmt.Sprintf("%s_score INTEGER NOT NULL DEFAULT 0", g))
	}

	schema := `
		CREATE TABLE IF NOT EXISTS assessments (
			id         TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			email      TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			` + strings.Join(cols, ",\n\t\t\t") + `,
			top_gift_1 TEXT,
			top_gift_2 TEXT,
			top_gift_3 TEXT,
			passions   TEXT NOT NULL DEFAULT '[]',
			skills     TEXT NOT NULL DEFAULT '[]',
			result     TEXT NOT NULL,
			first_name_fold TEXT NOT NULL DEFAULT '',
			last_name_fold  TEXT NOT NULL DEFAULT '',
			email_fold      TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at);
		CREATE INDEX IF NOT EXISTS idx_assessments_top_gift ON assessments(top_gift_1);

		CREATE TABLE IF NOT EXISTS responses (
			assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
			position      INTEGER NOT NULL,
			question_id   INTEGER NOT NULL,
			answer_value  INTEGER NOT NULL,
			PRIMARY KEY (assessment_id, position)
		);

		CREATE TABLE IF NOT EXISTS team_interests (
			assessment_id TEXT NOT NULL REFERENCES assessments(id) ON DELETE CASCADE,
			position      INTEGER NOT NULL,
			team_name     TEXT NOT NULL,
			PRIMARY KEY (assessment_id, position)
		);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func nullGift(g types.GiftCategory) sql.NullString {
	return sql.NullString{String: string(g), Valid: g != ""}
}

func (s *SQLiteStore) Save(ctx context.Context, a model.Assessment) (err error) {
	defer observe(opSave, time.Now())
	defer func() {
		if err != nil {
			metrics.RecordErrorByComponent("store", "save_failed")
		}
	}()
	if a.ID == "" {
		return ErrInvalidID
	}

	result, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("save %s: encode result: %w", a.ID, err)
	}
	passions, err := json.Marshal(nonNil(a.Passions))
	if err != nil {
		return fmt.Errorf("save %s: encode passions: %w", a.ID, err)
	}
	skills, err := json.Marshal(nonNil(a.Skills))
	if err != nil {
		return fmt.Errorf("save %s: encode skills: %w", a.ID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save %s: begin: %w", a.ID, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int
	switch qerr := tx.QueryRowContext(ctx, `SELECT 1 FROM assessments WHERE id = ?`, a.ID).Scan(&exists); {
	case qerr == nil:
		return fmt.Errorf("save %s: %w", a.ID, ErrDuplicateID)
	case !errors.Is(qerr, sql.ErrNoRows):
		return fmt.Errorf("save %s: lookup: %w", a.ID, qerr)
	}

	cols := []string{"id", "first_name", "last_name", "email", "created_at"}
	args := []any{a.ID, a.FirstName, a.LastName, a.Email, a.CreatedAt.UnixNano()}
	for _, g := range types.Gifts() {
		cols = append(cols, string(g)+"_score")
		args = append(args, a.Result.GiftScores[g])
	}
	cols = append(cols, "top_gift_1", "top_gift_2", "top_gift_3", "passions", "skills", "result",
		"first_name_fold", "last_name_fold", "email_fold")
	args = append(args, nullGift(a.TopGift(0)), nullGift(a.TopGift(1)), nullGift(a.TopGift(2)),
		string(passions), string(skills), string(result),
		strings.ToLower(a.FirstName), strings.ToLower(a.LastName), strings.ToLower(a.Email))

	query := "INSERT INTO assessments (" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: insert assessment: %w", a.ID, err)
	}

	for i, r := range a.Responses {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO responses (assessment_id, position, question_id, answer_value) VALUES (?, ?, ?, ?)`,
			a.ID, i, r.QuestionID, r.AnswerValue); err != nil {
			return fmt.Errorf("save %s: insert response: %w", a.ID, err)
		}
	}
	for i, name := range a.TeamInterests {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO team_interests (assessment_id, position, team_name) VALUES (?, ?, ?)`,
			a.ID, i, name); err != nil {
			return fmt.Errorf("save %s: insert team interest: %w", a.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("save %s: commit: %w", a.ID, err)
	}
	if n, cerr := s.count(ctx); cerr == nil {
		metrics.UpdateStoreRecords(n)
	}
	return nil
}

const selectAssessment = `SELECT id, first_name, last_name, email, created_at, passions, skills, result FROM assessments`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (model.Assessment, error) {
	var (
		a                        model.Assessment
		created                  int64
		passions, skills, result string
	)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &created, &passions, &skills, &result); err != nil {
		return model.Assessment{}, err
	}
	a.CreatedAt = time.Unix(0, created).UTC()
	if err := json.Unmarshal([]byte(passions), &a.Passions); err != nil {
		return model.Assessment{}, fmt.Errorf("decode passions: %w", err)
	}
	if err := json.Unmarshal([]byte(skills), &a.Skills); err != nil {
		return model.Assessment{}, fmt.Errorf("decode skills: %w", err)
	}
	var res assessment.Result
	if err := json.Unmarshal([]byte(result), &res); err != nil {
		return model.Assessment{}, fmt.Errorf("decode result: %w", err)
	}
	a.Result = res
	return a, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (model.Assessment, error) {
	defer observe(opGet, time.Now())

	a, err := scanAssessment(s.db.QueryRowContext(ctx, selectAssessment+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordErrorByComponent("store", "not_found")
		return model.Assessment{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		metrics.RecordErrorByComponent("store", "get_failed")
		return model.Assessment{}, fmt.Errorf("get %s: %w", id, err)
	}
	if err := s.loadChildren(ctx, &a); err != nil {
		return model.Assessment{}, fmt.Errorf("get %s: %w", id, err)
	}
	return a, nil
}

func (s *SQLiteStore) loadChildren(ctx context.Context, a *model.Assessment) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, answer_value FROM responses WHERE assessment_id = ? ORDER BY position`, a.ID)
	if err != nil {
		return fmt.Errorf("load responses: %w", err)
	}
	for rows.Next() {
		var r types.QuestionResponse
		if err := rows.Scan(&r.QuestionID, &r.AnswerValue); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan response: %w", err)
		}
		a.Responses = append(a.Responses, r)
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load responses: %w", err)
	}

	irows, err := s.db.QueryContext(ctx,
		`SELECT team_name FROM team_interests WHERE assessment_id = ? ORDER BY position`, a.ID)
	if err != nil {
		return fmt.Errorf("load team interests: %w", err)
	}
	defer irows.Close()
	for irows.Next() {
		var name string
		if err := irows.Scan(&name); err != nil {
			return fmt.Errorf("scan team interest: %w", err)
		}
		a.TeamInterests = append(a.TeamInterests, name)
	}
	return irows.Err()
}

// likeEscaper escapes LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *SQLiteStore) List(ctx context.Context, f model.ListFilter) ([]model.Assessment, error) {
	defer observe(opList, time.Now())

	var (
		where []string
		args  []any
	)
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
		// SQLite lower() folds ASCII only, so the folded copies are written in Go.
		where = append(where, `(first_name_fold LIKE ? ESCAPE '\' OR last_name_fold LIKE ? ESCAPE '\' OR email_fold LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}
	if f.TopGift != "" {
		where = append(where, "top_gift_1 = ?")
		args = append(args, string(f.TopGift))
	}
	if !f.Start.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, f.Start.UnixNano())
	}
	if !f.End.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, f.End.UnixNano())
	}

	query := selectAssessment
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordErrorByComponent("store", "list_failed")
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	out := make([]model.Assessment, 0)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	_ = rows.Close()

	for i := range out {
		if err := s.loadChildren(ctx, &out[i]); err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
	}
	return out, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	defer observe(opCount, time.Now())
	return s.count(ctx)
}

func (s *SQLiteStore) count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assessments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
