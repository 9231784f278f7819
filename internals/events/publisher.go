// file: internals/events/publisher.go
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys untuk event lifecycle reservasi.
const (
	KeyReservationCreated   = "reservation.created"
	KeyReservationApproved  = "reservation.approved"
	KeyReservationRejected  = "reservation.rejected"
	KeyReservationCancelled = "reservation.cancelled"
	KeyReservationCompleted = "reservation.completed"
)

// ReservationEvent: payload JSON yang dikonsumsi layanan notifikasi eksternal.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	FieldID       uuid.UUID `json:"field_id"`
	ApplicantID   uuid.UUID `json:"applicant_id"`
	Status        string    `json:"status"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

/* ===============================
   Default publisher (diisi di main)
=================================*/

var (
	mu     sync.RWMutex
	defPub *Publisher
)

func Init(url, exchange string) error {
	p, err := NewPublisher(url, exchange)
	if err != nil {
		return err
	}
	mu.Lock()
	defPub = p
	mu.Unlock()
	log.Printf("[EVENTS] publisher siap (exchange=%s)", exchange)
	return nil
}

// Publish: best-effort; tanpa publisher terkonfigurasi jadi no-op, dan error
// broker hanya dicatat — keputusan booking tidak pernah bergantung pada broker.
func Publish(key string, ev ReservationEvent) {
	mu.RLock()
	p := defPub
	mu.RUnlock()
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := p.PublishJSON(ctx, key, ev); err != nil {
		log.Printf("[EVENTS] publish %s gagal: %v", key, err)
	}
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if defPub != nil {
		_ = defPub.Close()
		defPub = nil
	}
}
