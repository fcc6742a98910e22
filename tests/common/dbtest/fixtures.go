//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertRFQ writes the RFQ header and its lines as the buyer side would.
func InsertRFQ(t *testing.T, db DBLike, r *rfq.RFQ) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO rfqs (id, buyer_id, title, delivery_address, status) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, r.BuyerID, r.Title, r.DeliveryAddress, r.Status.String())
	require.NoError(t, err)

	for _, l := range r.Lines {
		_, err := db.Exec(ctx,
			`INSERT INTO rfq_lines (rfq_id, line_index, description, quantity, unit, spec_notes)
			 VALUES ($1, $2, $3, $4::numeric, $5, $6)`,
			r.ID, l.Index, l.Description, l.Quantity.String(), l.Unit, l.SpecNotes)
		require.NoError(t, err)
	}
}

// InsertOffer writes an offer row bypassing the submit path, for states the
// API cannot reach on its own (accepted, rejected, already expired).
func InsertOffer(t *testing.T, db DBLike, o *offer.Offer) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO offers (id, rfq_id, supplier_id, version_number, status, total_amount, delivery_fee,
		   delivery_window_start, delivery_window_end, payment_terms, notes, expires_at, created_at, superseded_at)
		 VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.RFQID, o.SupplierID, o.VersionNumber, o.Status.String(), o.TotalAmount.String(), o.DeliveryFee.String(),
		o.DeliveryWindowStart, o.DeliveryWindowEnd, o.PaymentTerms.String(), o.Notes, o.ExpiresAt, o.CreatedAt, o.SupersededAt)
	require.NoError(t, err)

	for _, lp := range o.LinePrices {
		_, err := db.Exec(ctx,
			`INSERT INTO offer_line_prices (offer_id, line_index, unit_price, total_price, notes)
			 VALUES ($1, $2, $3::numeric, $4::numeric, $5)`,
			o.ID, lp.LineIndex, lp.UnitPrice.String(), lp.TotalPrice.String(), lp.Notes)
		require.NoError(t, err)
	}
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM notification_jobs WHERE topic = $1`, topic).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountOffers(t *testing.T, db DBLike, rfqID, supplierID uuid.UUID) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM offers WHERE rfq_id = $1 AND supplier_id = $2`, rfqID, supplierID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
