// Package notify publishes ledger change events to redis so that other
// household services (and connected clients) can refresh without
// polling.
//
// Publishing is best effort. A bill that cannot be announced is still
// booked, the backend never fails a request because redis is down.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Channel is the redis pub/sub channel all ledger events go to.
const Channel = "hearthshare:events"

// Kind names the change an Event describes.
type Kind string

const (
	BillCreated       Kind = "bill.created"
	BillUpdated       Kind = "bill.updated"
	BillDeleted       Kind = "bill.deleted"
	PayerSettled      Kind = "payer.settled"
	BillRestored      Kind = "bill.restored"
	SettlementDeleted Kind = "settlement.deleted"
)

// Event is the payload published for every ledger change.
type Event struct {
	Kind     Kind      `json:"kind"`
	BillID   uuid.UUID `json:"billId,omitempty"`
	MemberID uuid.UUID `json:"memberId,omitempty"`
	At       time.Time `json:"at"`
}

// Client is nil when no redis address is configured. All publish
// operations are no-ops in that case.
var Client *redis.Client

// Connect initializes the redis client and verifies the connection.
// When redis is not reachable, the backend runs without notifications.
func Connect(addr string) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis not available, running without notifications")
		return
	}

	Client = client
	log.Info().Str("addr", addr).Msg("redis connected")
}

// Publish announces a ledger change. Errors are logged, never
// returned.
func Publish(ctx context.Context, kind Kind, bill, member uuid.UUID) {
	if Client == nil {
		return
	}

	payload, err := json.Marshal(Event{
		Kind:     kind,
		BillID:   bill,
		MemberID: member,
		At:       time.Now().UTC(),
	})
	if err != nil {
		log.Error().Err(err).Msg("could not encode event")
		return
	}

	if err := Client.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("could not publish event")
	}
}
