package repository

import (
	"context"
	"time"

	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/infra/db"
	"rfq-offer-service/internal/infra/repository/converter"
	"rfq-offer-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	selectRFQ     = `SELECT ` + converter.RFQColumns + ` FROM rfqs WHERE id = $1`
	lockRFQShared = selectRFQ + ` FOR SHARE`
	selectLines   = `SELECT ` + converter.RFQLineColumns + ` FROM rfq_lines WHERE rfq_id = $1 ORDER BY line_index`
)

type RFQRepository struct{}

func NewRFQRepository() *RFQRepository {
	return &RFQRepository{}
}

// FindByID holds a share lock on the rfq row so it cannot be closed while
// an offer is being written against it.
func (r *RFQRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*rfq.RFQ, error) {
	found, _, err := LoadRFQ(ctx, tx, id, true)
	return found, err
}

// LoadRFQ reads the rfq header and its lines. The second result is the
// rfq's creation time.
func LoadRFQ(ctx context.Context, conn db.DBTX, id uuid.UUID, lock bool) (*rfq.RFQ, time.Time, error) {
	query := selectRFQ
	if lock {
		query = lockRFQShared
	}

	rows, err := conn.Query(ctx, query, id)
	if err != nil {
		return nil, time.Time{}, infra.WrapRepoErr("failed to query rfq", err)
	}
	header, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.RFQRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, time.Time{}, infra.WrapRepoErr("rfq not found", err, infra.KindNotFound)
		}
		return nil, time.Time{}, infra.WrapRepoErr("failed to scan rfq", err)
	}

	rows, err = conn.Query(ctx, selectLines, id)
	if err != nil {
		return nil, time.Time{}, infra.WrapRepoErr("failed to query rfq lines", err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.RFQLineRow])
	if err != nil {
		return nil, time.Time{}, infra.WrapRepoErr("failed to scan rfq lines", err)
	}

	found, createdAt, err := converter.RFQToDomain(header, lines)
	if err != nil {
		return nil, time.Time{}, infra.WrapRepoErr("stored rfq is invalid", err, infra.KindDBFailure)
	}
	return found, createdAt, nil
}
