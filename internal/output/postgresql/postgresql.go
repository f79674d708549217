// Package postgresql stores objects in a postgres table, keeping the highest
// version seen for every id.
package postgresql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/originbyte/ob-sdk-go/internal/models"
	"github.com/originbyte/ob-sdk-go/internal/output"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const upsertObject = `INSERT INTO objects (id, version, digest, type, owner, data, decoded)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    version = EXCLUDED.version,
    digest = EXCLUDED.digest,
    type = EXCLUDED.type,
    owner = EXCLUDED.owner,
    data = EXCLUDED.data,
    decoded = EXCLUDED.decoded,
    updated_at = now()
WHERE objects.version <= EXCLUDED.version`

const selectObject = `SELECT id, version, digest, type, owner, data, decoded FROM objects WHERE id = $1`

// maxBindParams is the most parameters one postgres statement accepts.
const maxBindParams = 65535

type OutputHandler struct {
	db     *sql.DB
	logger *zap.Logger
	// idsPerQuery bounds the placeholders of one stored id lookup.
	idsPerQuery int
}

var _ output.OutputHandler = (*OutputHandler)(nil)

// Open connects to dsn and migrates the schema to the latest version.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*OutputHandler, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open database")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.WithMessage(err, "failed to connect to database")
	}
	if err := Migrate(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	return New(db, logger), nil
}

// New wraps an already migrated database.
func New(db *sql.DB, logger *zap.Logger) *OutputHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutputHandler{db: db, logger: logger, idsPerQuery: maxBindParams}
}

// Migrate applies the embedded migrations.
func Migrate(db *sql.DB, logger *zap.Logger) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return errors.WithMessage(err, "failed to load migrations")
	}
	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return errors.WithMessage(err, "failed to create migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return errors.WithMessage(err, "failed to create migrator")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.WithMessage(err, "failed to run migrations")
	}
	version, dirty, err := m.Version()
	if err == nil && logger != nil {
		logger.Info("database schema ready", zap.Uint("version", version), zap.Bool("dirty", dirty))
	}
	return nil
}

func (h *OutputHandler) WriteObjects(ctx context.Context, objects []*models.Object) error {
	if len(objects) == 0 {
		return nil
	}
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WithMessage(err, "failed to begin transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, upsertObject)
	if err != nil {
		return errors.WithMessage(err, "failed to prepare upsert")
	}
	defer stmt.Close()

	for _, o := range objects {
		var owner any
		if len(o.Owner) > 0 {
			owner = []byte(o.Owner)
		}
		if _, err := stmt.ExecContext(ctx, o.ID, int64(o.Version), o.Digest, o.Type, owner, []byte(o.Data), o.Decoded); err != nil {
			return errors.WithMessagef(err, "failed to write object %s", o.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.WithMessage(err, "failed to commit objects")
	}
	h.logger.Debug("objects written", zap.Int("count", len(objects)))
	return nil
}

func (h *OutputHandler) GetObject(ctx context.Context, id string) (*models.Object, error) {
	var (
		o       models.Object
		version int64
		owner   []byte
		data    []byte
	)
	err := h.db.QueryRowContext(ctx, selectObject, id).Scan(&o.ID, &version, &o.Digest, &o.Type, &owner, &data, &o.Decoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", output.ErrNotFound, id)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read object %s", id)
	}
	o.Version = uint64(version)
	o.Owner = owner
	o.Data = data
	return &o, nil
}

func (h *OutputHandler) GetMissingObjectIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	stored := make(map[string]struct{}, len(ids))
	for start := 0; start < len(ids); start += h.idsPerQuery {
		end := min(start+h.idsPerQuery, len(ids))
		if err := h.storedIDs(ctx, ids[start:end], stored); err != nil {
			return nil, err
		}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := stored[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// storedIDs adds the ids of chunk that have a row to stored.
func (h *OutputHandler) storedIDs(ctx context.Context, chunk []string, stored map[string]struct{}) error {
	placeholders := make([]string, len(chunk))
	args := make([]any, len(chunk))
	for i, id := range chunk {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := "SELECT id FROM objects WHERE id IN (" + strings.Join(placeholders, ", ") + ")"
	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return errors.WithMessage(err, "failed to query stored ids")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		stored[id] = struct{}{}
	}
	return rows.Err()
}

func (h *OutputHandler) Close() error {
	return h.db.Close()
}
