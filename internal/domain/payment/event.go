package payment

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type EventType string

const (
	EventPaymentIntentSucceeded   EventType = "payment_intent.succeeded"
	EventCheckoutSessionCompleted EventType = "checkout.session.completed"
)

const (
	MetadataUserID     = "userId"
	MetadataRoomID     = "roomId"
	MetadataBookingIDs = "bookingIds"
)

// StatusCheckoutCompleted is recorded for transactions coming from a completed checkout session.
const StatusCheckoutCompleted = "completed"

// Event is a verified processor notification. At most one of the payloads is set.
type Event struct {
	ID              string
	Type            EventType
	PaymentIntent   *PaymentIntent
	CheckoutSession *CheckoutSession
	Raw             []byte
}

type PaymentIntent struct {
	ID             string
	AmountReceived int64
	Currency       string
	Status         string
	ClientSecret   string
	Metadata       map[string]string
}

type CheckoutSession struct {
	ID              string
	PaymentIntentID string
	AmountTotal     int64
	Currency        string
	URL             string
	Metadata        map[string]string
}

// BookingIDs returns the positive ids listed in the session metadata; malformed entries are skipped.
func (s *CheckoutSession) BookingIDs() []int64 {
	return ParseBookingIDs(s.Metadata[MetadataBookingIDs])
}

// UserID is only set when the metadata carries a well-formed UUID.
func (s *CheckoutSession) UserID() (uuid.UUID, bool) {
	raw, ok := s.Metadata[MetadataUserID]
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func ParseBookingIDs(csv string) []int64 {
	var ids []int64
	for part := range strings.SplitSeq(csv, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func JoinBookingIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
