package converter

import (
	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const OfferColumns = `id, rfq_id, supplier_id, version_number, status, total_amount, delivery_fee,
	delivery_window_start, delivery_window_end, payment_terms, notes, expires_at, created_at, superseded_at`

const LinePriceColumns = `offer_id, line_index, unit_price, total_price, notes`

type OfferRow struct {
	ID                  uuid.UUID          `db:"id"`
	RFQID               uuid.UUID          `db:"rfq_id"`
	SupplierID          uuid.UUID          `db:"supplier_id"`
	VersionNumber       int32              `db:"version_number"`
	Status              string             `db:"status"`
	TotalAmount         pgtype.Numeric     `db:"total_amount"`
	DeliveryFee         pgtype.Numeric     `db:"delivery_fee"`
	DeliveryWindowStart pgtype.Timestamptz `db:"delivery_window_start"`
	DeliveryWindowEnd   pgtype.Timestamptz `db:"delivery_window_end"`
	PaymentTerms        string             `db:"payment_terms"`
	Notes               pgtype.Text        `db:"notes"`
	ExpiresAt           pgtype.Timestamptz `db:"expires_at"`
	CreatedAt           pgtype.Timestamptz `db:"created_at"`
	SupersededAt        pgtype.Timestamptz `db:"superseded_at"`
}

type LinePriceRow struct {
	OfferID    uuid.UUID      `db:"offer_id"`
	LineIndex  int32          `db:"line_index"`
	UnitPrice  pgtype.Numeric `db:"unit_price"`
	TotalPrice pgtype.Numeric `db:"total_price"`
	Notes      pgtype.Text    `db:"notes"`
}

type CreateOfferParams struct {
	ID                  uuid.UUID
	RFQID               uuid.UUID
	SupplierID          uuid.UUID
	VersionNumber       int32
	Status              string
	TotalAmount         pgtype.Numeric
	DeliveryFee         pgtype.Numeric
	DeliveryWindowStart pgtype.Timestamptz
	DeliveryWindowEnd   pgtype.Timestamptz
	PaymentTerms        string
	Notes               pgtype.Text
	ExpiresAt           pgtype.Timestamptz
	CreatedAt           pgtype.Timestamptz
}

type CreateLinePriceParams struct {
	OfferID    uuid.UUID
	LineIndex  int32
	UnitPrice  pgtype.Numeric
	TotalPrice pgtype.Numeric
	Notes      pgtype.Text
}

func OfferToCreateParams(o *offer.Offer) CreateOfferParams {
	return CreateOfferParams{
		ID:                  o.ID,
		RFQID:               o.RFQID,
		SupplierID:          o.SupplierID,
		VersionNumber:       int32(o.VersionNumber), // #nosec G115 -- versions stay tiny
		Status:              o.Status.String(),
		TotalAmount:         pgconv.DecimalToPgtype(o.TotalAmount),
		DeliveryFee:         pgconv.DecimalToPgtype(o.DeliveryFee),
		DeliveryWindowStart: pgconv.TimeToPgtype(o.DeliveryWindowStart),
		DeliveryWindowEnd:   pgconv.TimeToPgtype(o.DeliveryWindowEnd),
		PaymentTerms:        o.PaymentTerms.String(),
		Notes:               pgconv.StringPtrToPgtype(o.Notes),
		ExpiresAt:           pgconv.TimeToPgtype(o.ExpiresAt),
		CreatedAt:           pgconv.TimeToPgtype(o.CreatedAt),
	}
}

func LinePricesToCreateParams(offerID uuid.UUID, lps []offer.LinePrice) []CreateLinePriceParams {
	params := make([]CreateLinePriceParams, len(lps))
	for i, lp := range lps {
		params[i] = CreateLinePriceParams{
			OfferID:    offerID,
			LineIndex:  int32(lp.LineIndex), // #nosec G115 -- line indexes come from the rfq
			UnitPrice:  pgconv.DecimalToPgtype(lp.UnitPrice),
			TotalPrice: pgconv.DecimalToPgtype(lp.TotalPrice),
			Notes:      pgconv.StringPtrToPgtype(lp.Notes),
		}
	}
	return params
}

func LinePriceToDomain(row LinePriceRow) (offer.LinePrice, error) {
	unit, err := pgconv.DecimalFromPgtype(row.UnitPrice)
	if err != nil {
		return offer.LinePrice{}, err
	}
	total, err := pgconv.DecimalFromPgtype(row.TotalPrice)
	if err != nil {
		return offer.LinePrice{}, err
	}
	return offer.LinePrice{
		LineIndex:  int(row.LineIndex),
		UnitPrice:  unit,
		TotalPrice: total,
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
	}, nil
}

// OfferToDomain assembles an offer from its header row and the line price
// rows that belong to it.
func OfferToDomain(row OfferRow, lineRows []LinePriceRow) (*offer.Offer, error) {
	total, err := pgconv.DecimalFromPgtype(row.TotalAmount)
	if err != nil {
		return nil, err
	}
	fee, err := pgconv.DecimalFromPgtype(row.DeliveryFee)
	if err != nil {
		return nil, err
	}

	lps := make([]offer.LinePrice, 0, len(lineRows))
	for _, lr := range lineRows {
		lp, err := LinePriceToDomain(lr)
		if err != nil {
			return nil, err
		}
		lps = append(lps, lp)
	}

	return &offer.Offer{
		ID:                  row.ID,
		RFQID:               row.RFQID,
		SupplierID:          row.SupplierID,
		LinePrices:          lps,
		TotalAmount:         total,
		DeliveryWindowStart: pgconv.TimeFromPgtype(row.DeliveryWindowStart),
		DeliveryWindowEnd:   pgconv.TimeFromPgtype(row.DeliveryWindowEnd),
		PaymentTerms:        offer.PaymentTerms(row.PaymentTerms),
		DeliveryFee:         fee,
		Notes:               pgconv.StringPtrFromPgtype(row.Notes),
		ExpiresAt:           pgconv.TimeFromPgtype(row.ExpiresAt),
		Status:              offer.Status(row.Status),
		VersionNumber:       int(row.VersionNumber),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		SupersededAt:        pgconv.TimePtrFromPgtype(row.SupersededAt),
	}, nil
}

// GroupLinePrices buckets line price rows by offer, keeping row order.
func GroupLinePrices(rows []LinePriceRow) map[uuid.UUID][]LinePriceRow {
	out := make(map[uuid.UUID][]LinePriceRow)
	for _, r := range rows {
		out[r.OfferID] = append(out[r.OfferID], r)
	}
	return out
}
