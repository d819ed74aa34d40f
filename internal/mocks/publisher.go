package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Publisher is a mock implementation of model.Publisher.
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Push(ctx context.Context, queue string, message any) error {
	args := m.Called(ctx, queue, message)
	return args.Error(0)
}
