package preferences

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kryva/kryva/internal/identity"
	"github.com/kryva/kryva/internal/store"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (store.Snapshot, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(store.Snapshot), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, key string, fields map[string]any) error {
	return m.Called(ctx, key, fields).Error(0)
}

type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) UpdateDisplayName(ctx context.Context, s identity.Session, name string) error {
	return m.Called(ctx, s, name).Error(0)
}

func (m *MockIdentity) DeleteIdentity(ctx context.Context, s identity.Session) error {
	return m.Called(ctx, s).Error(0)
}
