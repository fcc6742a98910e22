package shared

import (
	"time"

	"github.com/google/uuid"
)

// Outbox topics written alongside offer changes.
const (
	NotificationKindEmail = "email"

	TopicOfferSubmitted = "offer_submitted"
	TopicOfferRevised   = "offer_revised"
	TopicRFQDeclined    = "rfq_declined"
)

// OfferEvent is the outbox payload for offer and decline notifications.
type OfferEvent struct {
	RFQID         uuid.UUID  `json:"rfq_id"`
	BuyerID       uuid.UUID  `json:"buyer_id"`
	SupplierID    uuid.UUID  `json:"supplier_id"`
	OfferID       *uuid.UUID `json:"offer_id,omitempty"`
	VersionNumber int        `json:"version_number,omitempty"`
	TotalAmount   string     `json:"total_amount,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}
