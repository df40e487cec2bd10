package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/electro/internal/dbx"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres opens a pgx-backed *sql.DB and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// PostgresStore keeps all collections in the documents table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Collection(name string) Collection {
	return NewPostgresCollection(s.db, name)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// PostgresCollection is one collection of the documents table bound to a DBTX.
type PostgresCollection struct {
	db   dbx.DBTX
	name string
}

func NewPostgresCollection(db dbx.DBTX, name string) *PostgresCollection {
	return &PostgresCollection{db: db, name: name}
}

func (c *PostgresCollection) FindOne(ctx context.Context, id string) (Document, error) {
	query :=
		`SELECT id, body FROM documents
		 WHERE collection = $1 AND id = $2`

	var (
		docID string
		body  []byte
	)
	err := c.db.QueryRowContext(ctx, query, c.name, id).Scan(&docID, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return decode(docID, body)
}

func (c *PostgresCollection) Find(ctx context.Context, f Filter) ([]Document, error) {
	where, args := buildWhere(c.name, f)
	query := `SELECT id, body FROM documents WHERE ` + where + ` ORDER BY seq`

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]Document, 0)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("db scan error: %w", err)
		}
		doc, err := decode(id, body)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db rows error: %w", err)
	}
	return out, nil
}

func (c *PostgresCollection) InsertOne(ctx context.Context, doc Document) (string, error) {
	id, body := splitID(doc)
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	query :=
		`INSERT INTO documents (collection, id, body)
		 VALUES ($1, $2, $3::jsonb)`

	if _, err := c.db.ExecContext(ctx, query, c.name, id, string(b)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", ErrDuplicate
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (c *PostgresCollection) UpdateOne(ctx context.Context, id string, set Document) error {
	patch := make(Document, len(set))
	for k, v := range set {
		if k != IDField {
			patch[k] = v
		}
	}
	b, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode update: %w", err)
	}

	query :=
		`UPDATE documents SET body = body || $3::jsonb
		 WHERE collection = $1 AND id = $2`

	res, err := c.db.ExecContext(ctx, query, c.name, id, string(b))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

func (c *PostgresCollection) DeleteOne(ctx context.Context, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := c.db.ExecContext(ctx, query, c.name, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func decode(id string, body []byte) (Document, error) {
	doc := Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc[IDField] = id
	return doc, nil
}

// buildWhere renders f as a WHERE clause over the documents table. Field
// names travel as bind parameters, never as SQL text.
func buildWhere(collection string, f Filter) (string, []any) {
	args := []any{collection}
	clauses := []string{"collection = $1"}

	next := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	for _, c := range f.Conditions {
		k := next(c.Field)
		switch c.Op {
		case OpEq:
			v := next(c.Text)
			clauses = append(clauses, fmt.Sprintf(
				"(jsonb_typeof(body->$%d::text) = 'string' AND body->>$%d::text = $%d::text)",
				k, k, v))
		case OpGte, OpLte:
			cmp := ">="
			if c.Op == OpLte {
				cmp = "<="
			}
			v := next(c.Number)
			clauses = append(clauses, fmt.Sprintf(
				"CASE WHEN jsonb_typeof(body->$%d::text) = 'number' THEN (body->>$%d::text)::numeric END %s $%d::numeric",
				k, k, cmp, v))
		case OpAnyOf:
			set, _ := json.Marshal(c.Set)
			v := next(string(set))
			clauses = append(clauses, fmt.Sprintf(
				"(body->$%d::text) ?| ARRAY(SELECT jsonb_array_elements_text($%d::jsonb))",
				k, v))
		}
	}
	return strings.Join(clauses, " AND "), args
}
