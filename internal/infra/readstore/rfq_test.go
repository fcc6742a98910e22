//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"rfq-offer-service/internal/infra"
	"rfq-offer-service/internal/infra/readstore"
	dbmock "rfq-offer-service/tests/mock/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

type scanRow struct {
	declined bool
}

func (r scanRow) Scan(dest ...any) error {
	*dest[0].(*bool) = r.declined
	return nil
}

func TestRFQReadStore_QueryFailures(t *testing.T) {
	ctx := context.Background()
	rfqID, supplierID := uuid.New(), uuid.New()

	testCases := []struct {
		name string
		call func(*readstore.RFQReadStore, *dbmock.MockDBTX) error
	}{
		{
			name: "rfq",
			call: func(s *readstore.RFQReadStore, m *dbmock.MockDBTX) error {
				m.EXPECT().Query(ctx, gomock.Any(), rfqID).Return(nil, errDBConnectionLost)
				_, _, err := s.FindRFQ(ctx, m, rfqID)
				return err
			},
		},
		{
			name: "canonical offer",
			call: func(s *readstore.RFQReadStore, m *dbmock.MockDBTX) error {
				m.EXPECT().Query(ctx, gomock.Any(), rfqID, supplierID).Return(nil, errDBConnectionLost)
				_, err := s.FindCanonicalOffer(ctx, m, rfqID, supplierID)
				return err
			},
		},
		{
			name: "superseded offers",
			call: func(s *readstore.RFQReadStore, m *dbmock.MockDBTX) error {
				m.EXPECT().Query(ctx, gomock.Any(), rfqID, supplierID).Return(nil, errDBConnectionLost)
				_, err := s.ListSupersededOffers(ctx, m, rfqID, supplierID)
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := dbmock.NewMockDBTX(ctrl)

			err := tc.call(readstore.NewRFQReadStore(), mockDB)

			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			assert.ErrorIs(t, err, errDBConnectionLost)
		})
	}
}

func TestRFQReadStore_IsDeclined(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockDB := dbmock.NewMockDBTX(ctrl)
	rfqID, supplierID := uuid.New(), uuid.New()
	mockDB.EXPECT().QueryRow(ctx, gomock.Any(), rfqID, supplierID).Return(scanRow{declined: true})

	declined, err := readstore.NewRFQReadStore().IsDeclined(ctx, mockDB, rfqID, supplierID)

	assert.NoError(t, err)
	assert.True(t, declined)
}
