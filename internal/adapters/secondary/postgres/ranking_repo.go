package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/proyectos-indefinidos/AnaDec/internal/core/domain"
	"github.com/proyectos-indefinidos/AnaDec/internal/core/ports/output"
)

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS ranking (
		id         UUID PRIMARY KEY,
		mode       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		entries    JSONB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS ranking_created_at_idx ON ranking (created_at DESC);
`

type rankingRepo struct {
	pool *pgxpool.Pool
}

func NewRankingRepository(pool *pgxpool.Pool) ports.RankingRepository {
	return &rankingRepo{pool: pool}
}

// EnsureSchema creates the ranking table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure ranking schema: %w", err)
	}
	return nil
}

func (r *rankingRepo) Save(ctx context.Context, ranking *domain.Ranking) error {
	entriesJSON, err := json.Marshal(ranking.Entries)
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	query := `
		INSERT INTO ranking (id, mode, created_at, entries)
		VALUES ($1, $2, $3, $4)
	`
	_, err = r.pool.Exec(ctx, query, ranking.ID, string(ranking.Mode), ranking.CreatedAt, entriesJSON)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("ranking %s already stored: %w", ranking.ID, err)
		}
		return fmt.Errorf("create ranking: %w", err)
	}
	return nil
}

func (r *rankingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ranking, error) {
	query := `SELECT id, mode, created_at, entries FROM ranking WHERE id = $1`
	rk, err := scanRanking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRankingNotFound
		}
		return nil, fmt.Errorf("get ranking by id: %w", err)
	}
	return rk, nil
}

func (r *rankingRepo) Latest(ctx context.Context) (*domain.Ranking, error) {
	query := `SELECT id, mode, created_at, entries FROM ranking ORDER BY created_at DESC LIMIT 1`
	rk, err := scanRanking(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRankingNotFound
		}
		return nil, fmt.Errorf("get latest ranking: %w", err)
	}
	return rk, nil
}

func (r *rankingRepo) List(ctx context.Context, filter ports.RankingListFilter) ([]*domain.Ranking, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Mode != "" {
		conditions = append(conditions, fmt.Sprintf("mode = $%d", argPos))
		args = append(args, string(filter.Mode))
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM ranking WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count rankings: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, mode, created_at, entries
		FROM ranking
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rankings: %w", err)
	}
	defer rows.Close()

	var rankings []*domain.Ranking
	for rows.Next() {
		rk, err := scanRanking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ranking row: %w", err)
		}
		rankings = append(rankings, rk)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ranking rows: %w", err)
	}

	return rankings, total, nil
}

func scanRanking(row pgx.Row) (*domain.Ranking, error) {
	var (
		rk          domain.Ranking
		mode        string
		entriesJSON []byte
	)
	if err := row.Scan(&rk.ID, &mode, &rk.CreatedAt, &entriesJSON); err != nil {
		return nil, err
	}
	rk.Mode = domain.ComparisonMode(mode)
	if err := json.Unmarshal(entriesJSON, &rk.Entries); err != nil {
		return nil, fmt.Errorf("unmarshal entries: %w", err)
	}
	return &rk, nil
}
