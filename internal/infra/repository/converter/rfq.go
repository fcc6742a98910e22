package converter

import (
	"time"

	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const RFQColumns = `id, buyer_id, title, delivery_address, status, created_at`

const RFQLineColumns = `line_index, description, quantity, unit, spec_notes`

type RFQRow struct {
	ID              uuid.UUID          `db:"id"`
	BuyerID         uuid.UUID          `db:"buyer_id"`
	Title           string             `db:"title"`
	DeliveryAddress string             `db:"delivery_address"`
	Status          string             `db:"status"`
	CreatedAt       pgtype.Timestamptz `db:"created_at"`
}

type RFQLineRow struct {
	LineIndex   int32          `db:"line_index"`
	Description string         `db:"description"`
	Quantity    pgtype.Numeric `db:"quantity"`
	Unit        string         `db:"unit"`
	SpecNotes   pgtype.Text    `db:"spec_notes"`
}

func RFQToDomain(row RFQRow, lineRows []RFQLineRow) (*rfq.RFQ, time.Time, error) {
	lines := make([]rfq.Line, 0, len(lineRows))
	for _, lr := range lineRows {
		qty, err := pgconv.DecimalFromPgtype(lr.Quantity)
		if err != nil {
			return nil, time.Time{}, err
		}
		line, err := rfq.NewLine(int(lr.LineIndex), lr.Description, qty, lr.Unit, pgconv.StringPtrFromPgtype(lr.SpecNotes))
		if err != nil {
			return nil, time.Time{}, err
		}
		lines = append(lines, line)
	}

	r, err := rfq.Reconstruct(row.ID, row.BuyerID, row.Title, row.DeliveryAddress, rfq.Status(row.Status), lines)
	if err != nil {
		return nil, time.Time{}, err
	}
	return r, pgconv.TimeFromPgtype(row.CreatedAt), nil
}
