package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yashrajoria/shop-service/internal/models"
	aws_pkg "github.com/yashrajoria/shop-service/pkg/aws"
)

const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductEvent is the payload published on product lifecycle changes.
// Product is nil for deletions.
type ProductEvent struct {
	Type      string          `json:"type"`
	ProductID uint            `json:"product_id"`
	Product   *models.Product `json:"product,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewProductEvent stamps an event with the current time.
func NewProductEvent(eventType string, id uint, product *models.Product) ProductEvent {
	return ProductEvent{
		Type:      eventType,
		ProductID: id,
		Product:   product,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher delivers product events to subscribers.
type Publisher interface {
	PublishProductEvent(ctx context.Context, event ProductEvent) error
}

// SNSPublisher sends product events to a single SNS topic.
type SNSPublisher struct {
	client   aws_pkg.SNSPublisher
	topicArn string
}

func NewSNSPublisher(client aws_pkg.SNSPublisher, topicArn string) *SNSPublisher {
	return &SNSPublisher{client: client, topicArn: topicArn}
}

func (p *SNSPublisher) PublishProductEvent(ctx context.Context, event ProductEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return p.client.Publish(ctx, p.topicArn, event.Type, body)
}

// NopPublisher drops every event. Used when no topic is configured.
type NopPublisher struct{}

func (NopPublisher) PublishProductEvent(context.Context, ProductEvent) error { return nil }
