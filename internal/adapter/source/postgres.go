package source

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

// postgresTables maps each table to its relation name.
var postgresTables = map[domain.Table]string{
	domain.TableDataset:      "dataset",
	domain.TableDescriptions: "symptom_description",
	domain.TablePrecautions:  "symptom_precaution",
	domain.TableSeverity:     "symptom_severity",
}

// Postgres streams each table out of PostgreSQL as CSV with a header line,
// so the rows parse exactly like the file sources.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgres creates a connection pool for connString. No connection is made
// until the first Fetch.
func NewPostgres(ctx context.Context, connString string, logger *slog.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	return &Postgres{pool: pool, logger: logger}, nil
}

func (p *Postgres) Fetch(ctx context.Context, table domain.Table) (string, error) {
	name, ok := postgresTables[table]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTable, string(table))
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", fmt.Errorf("acquire connection for %s: %w", table, err)
	}
	defer conn.Release()

	var buf bytes.Buffer
	tag, err := conn.Conn().PgConn().CopyTo(ctx, &buf, copySQL(name))
	if err != nil {
		return "", fmt.Errorf("copy %s: %w", name, err)
	}
	p.logger.Debug("table copied", "table", table, "relation", name, "rows", tag.RowsAffected())
	return buf.String(), nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func copySQL(relation string) string {
	return fmt.Sprintf("COPY %s TO STDOUT WITH (FORMAT csv, HEADER true)", pgx.Identifier{relation}.Sanitize())
}
