//go:build unit

package negotiation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domneg "rfq-offer-service/internal/domain/negotiation"
	"rfq-offer-service/internal/domain/offer"
	"rfq-offer-service/internal/domain/rfq"
	"rfq-offer-service/internal/pkg/clock"
	"rfq-offer-service/internal/usecase/negotiation"
	"rfq-offer-service/tests/common/builder"
	negotiationmock "rfq-offer-service/tests/mock/negotiation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *negotiationmock.MockOfferStore
	clock   *clock.MockClock
	session *negotiation.Session
	rfq     *rfq.RFQ
	ctx     context.Context
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = negotiationmock.NewMockOfferStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC))
	s.session = negotiation.NewSession(s.store, s.clock, nil, time.UTC)
	s.rfq = builder.NewRFQBuilder().BuildDomain()
	s.ctx = context.Background()
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) snapshot(existing *offer.Offer) *negotiation.RFQSnapshot {
	return &negotiation.RFQSnapshot{RFQ: s.rfq, HasExistingOffer: existing != nil, ExistingOffer: existing}
}

func (s *SessionTestSuite) canonical(version int) *offer.Offer {
	return builder.NewOfferBuilder().
		WithRFQID(s.rfq.ID).
		WithVersion(version).
		WithExpiresAt(s.clock.Now().Add(24 * time.Hour)).
		BuildDomain()
}

func (s *SessionTestSuite) fillReady() {
	s.Require().NoError(s.session.SetUnitPrice(0, "10.00"))
	s.Require().NoError(s.session.SetSubtotal(1, "50.00"))
	s.Require().NoError(s.session.SetDeliveryFee("20.00"))
	s.Require().NoError(s.session.SetDeliveryDate("2026-05-08"))
	s.Require().NoError(s.session.SetDeliverySlot("08:00-12:00"))
}

func (s *SessionTestSuite) TestFreshOfferSubmitAndRefetch() {
	created := s.canonical(1)
	var sent offer.Submission

	gomock.InOrder(
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(nil), nil),
		s.store.EXPECT().SubmitOffer(gomock.Any(), s.rfq.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, sub offer.Submission) error {
				sent = sub
				return nil
			}),
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(created), nil),
	)

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Equal(domneg.PhaseDrafting, s.session.Phase())

	s.fillReady()
	s.Equal("100.00", s.session.Total().StringFixed(2))

	s.Require().NoError(s.session.Submit(s.ctx))

	s.True(decimal.RequireFromString("100.00").Equal(sent.TotalAmount))
	s.True(s.session.Total().IsZero())
	s.Equal(s.clock.Now().Add(48*time.Hour), sent.ExpiresAt)
	s.Equal(domneg.PhaseViewingOffer, s.session.Phase())
	s.Equal(1, s.session.Canonical().VersionNumber)
}

func (s *SessionTestSuite) TestValidationBlocksStoreCall() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(nil), nil)
	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))

	cases := []struct {
		name string
		edit func()
		rule domneg.Rule
	}{
		{name: "zero price", edit: func() { _ = s.session.SetUnitPrice(0, "0") }, rule: domneg.RuleLineUnitPrice},
		{name: "unset price", edit: func() { _ = s.session.SetUnitPrice(1, "") }, rule: domneg.RuleLineUnitPrice},
		{name: "no date", edit: func() { _ = s.session.SetDeliveryDate("") }, rule: domneg.RuleDeliveryDate},
		{name: "no time", edit: func() { _ = s.session.SetDeliverySlot("") }, rule: domneg.RuleDeliveryTime},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.fillReady()
			tc.edit()

			err := s.session.Submit(s.ctx)

			var verr *domneg.ValidationError
			s.Require().ErrorAs(err, &verr)
			s.Equal(tc.rule, verr.Rule)
			s.Equal(domneg.PhaseDrafting, s.session.Phase())
		})
	}
}

func (s *SessionTestSuite) TestSubmitFailurePreservesDraft() {
	storeErr := errors.New("409 offer was revised concurrently")

	gomock.InOrder(
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(nil), nil),
		s.store.EXPECT().SubmitOffer(gomock.Any(), s.rfq.ID, gomock.Any()).Return(storeErr),
		s.store.EXPECT().SubmitOffer(gomock.Any(), s.rfq.ID, gomock.Any()).Return(nil),
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(s.canonical(1)), nil),
	)

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.fillReady()
	before := s.session.Drafts()

	err := s.session.Submit(s.ctx)
	s.Require().ErrorIs(err, negotiation.ErrSubmission)
	s.Require().ErrorIs(err, storeErr)
	var subErr *negotiation.SubmissionError
	s.Require().ErrorAs(err, &subErr)
	s.Equal(domneg.PhaseDrafting, s.session.Phase())
	s.Equal(before, s.session.Drafts())
	s.Equal("20.00", s.session.Form().DeliveryFeeRaw)

	s.Require().NoError(s.session.Submit(s.ctx))
	s.Equal(domneg.PhaseViewingOffer, s.session.Phase())
}

func (s *SessionTestSuite) TestRefetchFailureAfterSubmit() {
	gomock.InOrder(
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(nil), nil),
		s.store.EXPECT().SubmitOffer(gomock.Any(), s.rfq.ID, gomock.Any()).Return(nil),
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(nil, errors.New("connection reset")),
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(s.canonical(1)), nil),
	)

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.fillReady()

	err := s.session.Submit(s.ctx)
	s.Require().ErrorIs(err, negotiation.ErrFetch)
	var fetchErr *negotiation.FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.True(fetchErr.Fatal)
	s.Equal(domneg.PhaseSubmitted, s.session.Phase())

	s.Require().NoError(s.session.Reload(s.ctx))
	s.Equal(domneg.PhaseViewingOffer, s.session.Phase())
}

func (s *SessionTestSuite) TestRevisionIncrementsVersionFromStore() {
	v1 := s.canonical(1)
	v2 := s.canonical(2)

	gomock.InOrder(
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(v1), nil),
		s.store.EXPECT().SubmitOffer(gomock.Any(), s.rfq.ID, gomock.Any()).Return(nil),
		s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(v2), nil),
	)
	s.store.EXPECT().FetchOfferHistory(gomock.Any(), s.rfq.ID).Return(offer.History{}, nil)

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Equal(domneg.PhaseViewingOffer, s.session.Phase())

	s.Require().NoError(s.session.BeginRevision(s.ctx))
	s.Equal(domneg.PhaseRevising, s.session.Phase())
	s.Require().NoError(s.session.SetUnitPrice(1, "6.00"))
	<-s.session.HistoryReady()

	s.Require().NoError(s.session.Submit(s.ctx))
	s.Equal(v1.VersionNumber+1, s.session.Canonical().VersionNumber)
	s.Equal(domneg.PhaseViewingOffer, s.session.Phase())
}

func (s *SessionTestSuite) TestRevisionLoadsHistoryInBackground() {
	v2 := s.canonical(2)
	at := s.clock.Now().Add(-time.Hour)
	v1 := *builder.NewOfferBuilder().WithRFQID(s.rfq.ID).WithVersion(1).AsSuperseded(at).BuildDomain()

	release := make(chan struct{})
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(v2), nil)
	s.store.EXPECT().FetchOfferHistory(gomock.Any(), s.rfq.ID).
		DoAndReturn(func(context.Context, uuid.UUID) (offer.History, error) {
			<-release
			return offer.NewHistory([]offer.Offer{v1}), nil
		})

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Require().NoError(s.session.BeginRevision(s.ctx))

	// editing does not wait for the history fetch
	s.Require().NoError(s.session.SetUnitPrice(0, "11"))
	h, err := s.session.History()
	s.NoError(err)
	s.Empty(h)

	close(release)
	<-s.session.HistoryReady()

	h, err = s.session.History()
	s.Require().NoError(err)
	s.Require().Len(h, 1)
	s.Equal(1, h[0].VersionNumber)
	s.NotNil(h[0].SupersededAt)
}

func (s *SessionTestSuite) TestHistoryFailureIsNonFatal() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(s.canonical(1)), nil)
	s.store.EXPECT().FetchOfferHistory(gomock.Any(), s.rfq.ID).Return(nil, errors.New("503"))

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Require().NoError(s.session.BeginRevision(s.ctx))
	<-s.session.HistoryReady()

	h, err := s.session.History()
	s.Empty(h)
	var fetchErr *negotiation.FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.False(fetchErr.Fatal)
	s.Equal(negotiation.ResourceHistory, fetchErr.Resource)
	s.Equal(domneg.PhaseRevising, s.session.Phase())
	s.Len(s.session.Drafts(), 2)
}

func (s *SessionTestSuite) TestCancelRevision() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(s.canonical(1)), nil)
	s.store.EXPECT().FetchOfferHistory(gomock.Any(), s.rfq.ID).Return(offer.History{}, nil)

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Require().NoError(s.session.BeginRevision(s.ctx))
	s.Require().NoError(s.session.SetUnitPrice(0, "99"))
	s.Require().NoError(s.session.CancelRevision())
	<-s.session.HistoryReady()

	s.Equal(domneg.PhaseViewingOffer, s.session.Phase())
	s.Nil(s.session.Drafts())
	s.ErrorIs(s.session.Submit(s.ctx), domneg.ErrNotEditing)
}

func (s *SessionTestSuite) TestOpenFailureIsFatal() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(nil, errors.New("404 rfq not found"))

	err := s.session.Open(s.ctx, s.rfq.ID)

	var fetchErr *negotiation.FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.True(fetchErr.Fatal)
	s.Equal(negotiation.ResourceRFQ, fetchErr.Resource)
	s.Equal(domneg.PhaseNoOffer, s.session.Phase())
}

func (s *SessionTestSuite) TestInconsistentSnapshotIsFatal() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).
		Return(&negotiation.RFQSnapshot{RFQ: s.rfq, HasExistingOffer: true}, nil)

	err := s.session.Open(s.ctx, s.rfq.ID)
	s.ErrorIs(err, negotiation.ErrFetch)
}

func (s *SessionTestSuite) TestDecline() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(nil), nil)
	s.store.EXPECT().DeclineRFQ(gomock.Any(), s.rfq.ID).Return(nil)

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Require().NoError(s.session.Decline(s.ctx))
	s.Equal(domneg.PhaseDeclined, s.session.Phase())
	s.ErrorIs(s.session.SetUnitPrice(0, "1"), domneg.ErrNotEditing)
}

func (s *SessionTestSuite) TestDeclineFailureKeepsPhase() {
	s.store.EXPECT().FetchRFQ(gomock.Any(), s.rfq.ID).Return(s.snapshot(nil), nil)
	s.store.EXPECT().DeclineRFQ(gomock.Any(), s.rfq.ID).Return(errors.New("500"))

	s.Require().NoError(s.session.Open(s.ctx, s.rfq.ID))
	s.Error(s.session.Decline(s.ctx))
	s.Equal(domneg.PhaseDrafting, s.session.Phase())
}

func TestHistoryReadyWithoutFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := negotiation.NewSession(negotiationmock.NewMockOfferStore(ctrl), clock.NewRealClock(), nil, nil)

	select {
	case <-session.HistoryReady():
	default:
		t.Fatal("history ready channel should be closed before any revision")
	}
	h, err := session.History()
	require.NoError(t, err)
	assert.Empty(t, h)
}
