package itinerary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zvrva/travelbook/internal/domain"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, address string, it domain.Itinerary) error {
	args := m.Called(ctx, address, it)
	return args.Error(0)
}

func TestService_Combine_CopiesIndependently(t *testing.T) {
	s := NewService(nil)
	source := []domain.Booking{
		{Destination: "Paris", Date: "2024-05-01", TransportType: "Flight", Price: 199.99},
		{Destination: "Rome", Date: "2024-06-10", TransportType: "Train", Price: 89},
	}

	it := s.Combine(source)
	require.Len(t, it.Items, 2)

	// mutating the source after composition must not change the itinerary
	source[0].Destination = "Changed"
	assert.Equal(t, "Paris", it.Items[0].Destination)
}

func TestService_Combine_KeepsDuplicates(t *testing.T) {
	s := NewService(nil)
	b := domain.Booking{Destination: "Oslo"}
	it := s.Combine([]domain.Booking{b, b})
	assert.Len(t, it.Items, 2)
}

func TestService_Share_Success(t *testing.T) {
	sender := &MockSender{}
	s := NewService(sender)
	it := s.Combine([]domain.Booking{{Destination: "Paris"}})

	sender.On("Send", mock.Anything, "friend@example.com", it).Return(nil)

	conf, err := s.Share(context.Background(), it, "friend@example.com")
	require.NoError(t, err)
	assert.Equal(t, "friend@example.com", conf.Address)
	assert.Equal(t, 1, conf.Items)
	assert.NotEmpty(t, conf.Reference)
	assert.Len(t, it.Items, 1)
	sender.AssertExpectations(t)
}

func TestService_Share_SenderErrorPropagates(t *testing.T) {
	sender := &MockSender{}
	s := NewService(sender)
	it := domain.Itinerary{}

	sendErr := errors.New("boom")
	sender.On("Send", mock.Anything, "x", it).Return(sendErr)

	_, err := s.Share(context.Background(), it, "x")
	assert.ErrorIs(t, err, sendErr)
}
