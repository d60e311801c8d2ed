package events

import (
	"context"
	"errors"
	"time"

	"github.com/marcelly-ramos/projeto-backend/internal/models"
)

type Type string

const (
	ProductCreated Type = "product_created"
	ProductUpdated Type = "product_updated"
	ProductDeleted Type = "product_deleted"
)

type Event struct {
	Type      Type            `json:"type"`
	ProductID uint            `json:"productID"`
	Name      string          `json:"name,omitempty"`
	Slug      string          `json:"slug,omitempty"`
	ActorID   uint            `json:"actorID,omitempty"`
	At        time.Time       `json:"at"`
	Product   *models.Product `json:"product,omitempty"`
}

// Publisher delivers an event before returning.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, evt Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
