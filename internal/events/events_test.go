package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yashrajoria/shop-service/internal/models"
)

type mockSNS struct {
	mock.Mock
}

func (m *mockSNS) Publish(ctx context.Context, topicArn, eventType string, message []byte) error {
	args := m.Called(ctx, topicArn, eventType, message)
	return args.Error(0)
}

func TestSNSPublisher_PublishProductEvent(t *testing.T) {
	client := new(mockSNS)
	pub := NewSNSPublisher(client, "arn:aws:sns:us-east-1:000000000000:products")

	var sent []byte
	client.On("Publish", mock.Anything, "arn:aws:sns:us-east-1:000000000000:products", ProductCreated, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(3).([]byte) }).
		Return(nil)

	product := &models.Product{ID: 3, Name: "Lamp", Price: 12}
	err := pub.PublishProductEvent(context.Background(), NewProductEvent(ProductCreated, product.ID, product))
	require.NoError(t, err)
	client.AssertExpectations(t)

	var decoded ProductEvent
	require.NoError(t, json.Unmarshal(sent, &decoded))
	assert.Equal(t, ProductCreated, decoded.Type)
	assert.Equal(t, uint(3), decoded.ProductID)
	require.NotNil(t, decoded.Product)
	assert.Equal(t, "Lamp", decoded.Product.Name)
}

func TestSNSPublisher_ReturnsClientError(t *testing.T) {
	client := new(mockSNS)
	client.On("Publish", mock.Anything, "topic", ProductDeleted, mock.Anything).Return(assert.AnError)

	err := NewSNSPublisher(client, "topic").
		PublishProductEvent(context.Background(), NewProductEvent(ProductDeleted, 9, nil))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDeleteEventOmitsProduct(t *testing.T) {
	body, err := json.Marshal(NewProductEvent(ProductDeleted, 9, nil))
	require.NoError(t, err)
	assert.NotContains(t, string(body), `"product":`)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishProductEvent(context.Background(), ProductEvent{}))
}
