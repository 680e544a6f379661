package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/BruksfildServices01/salon-admin/internal/models"
	"github.com/BruksfildServices01/salon-admin/internal/timezone"
)

// Publisher forwards written audit entries to an external channel.
type Publisher interface {
	Publish(ctx context.Context, entry models.AuditLog) error
}

type Logger struct {
	store     Store
	publisher Publisher
	now       timezone.Clock
}

// New builds a Logger. publisher may be nil.
func New(store Store, publisher Publisher, now timezone.Clock) *Logger {
	return &Logger{store: store, publisher: publisher, now: now}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Actor:     ev.Actor,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	saved, err := l.store.Save(ctx, entry)
	if err != nil {
		return err
	}

	if l.publisher != nil {
		if err := l.publisher.Publish(ctx, *saved); err != nil {
			log.Println("audit publish error:", err)
		}
	}
	return nil
}
