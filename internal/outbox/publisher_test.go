package outbox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Fetch(ctx context.Context, limit int) ([]Row, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]Row)
	return rows, args.Error(1)
}

func (m *MockStore) MarkPublished(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic string, key, value []byte) error {
	return m.Called(ctx, topic, key, value).Error(0)
}

func TestPublishBatch(t *testing.T) {
	rows := []Row{
		{ID: "1", Topic: "account.deleted", Key: "u1", Payload: []byte(`{"user_id":"u1"}`)},
		{ID: "2", Topic: "account.deleted", Key: "u2", Payload: []byte(`{"user_id":"u2"}`)},
	}

	tests := []struct {
		name  string
		setup func(s *MockStore, p *MockProducer)
		want  int
	}{
		{
			name: "All published",
			setup: func(s *MockStore, p *MockProducer) {
				s.On("Fetch", mock.Anything, DefaultBatchSize).Return(rows, nil)
				p.On("Publish", mock.Anything, "account.deleted", mock.Anything, mock.Anything).Return(nil)
				s.On("MarkPublished", mock.Anything, "1").Return(nil)
				s.On("MarkPublished", mock.Anything, "2").Return(nil)
			},
			want: 2,
		},
		{
			name: "Publish failure leaves row",
			setup: func(s *MockStore, p *MockProducer) {
				s.On("Fetch", mock.Anything, DefaultBatchSize).Return(rows, nil)
				p.On("Publish", mock.Anything, "account.deleted", []byte("u1"), mock.Anything).Return(errors.New("broker down"))
				p.On("Publish", mock.Anything, "account.deleted", []byte("u2"), mock.Anything).Return(nil)
				s.On("MarkPublished", mock.Anything, "2").Return(nil)
			},
			want: 1,
		},
		{
			name: "Fetch failure",
			setup: func(s *MockStore, p *MockProducer) {
				s.On("Fetch", mock.Anything, DefaultBatchSize).Return(nil, errors.New("db down"))
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := new(MockStore), new(MockProducer)
			tt.setup(s, p)

			got := NewPublisher(s, p, zap.NewNop()).PublishBatch(context.Background())

			assert.Equal(t, tt.want, got)
			s.AssertExpectations(t)
			p.AssertExpectations(t)
		})
	}
}

func TestPublishBatch_FailedRowNotMarked(t *testing.T) {
	s, p := new(MockStore), new(MockProducer)
	s.On("Fetch", mock.Anything, DefaultBatchSize).Return([]Row{{ID: "1", Topic: "t", Key: "k"}}, nil)
	p.On("Publish", mock.Anything, "t", []byte("k"), mock.Anything).Return(errors.New("broker down"))

	NewPublisher(s, p, zap.NewNop()).PublishBatch(context.Background())

	s.AssertNotCalled(t, "MarkPublished", mock.Anything, "1")
}

func TestStart_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		NewPublisher(new(MockStore), new(MockProducer), zap.NewNop()).Start(ctx)
		close(done)
	}()
	<-done
}
