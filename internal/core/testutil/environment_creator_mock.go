package testutil

import (
	"context"
	"io"

	"github.com/fievelk/virtualias/internal/core/ports"
)

// MockEnvironmentCreator is a mock implementation of ports.EnvironmentCreator.
type MockEnvironmentCreator struct {
	CreateFunc func(ctx context.Context, args []string, stdout io.Writer) error
	// CreateCalls keeps track of the arguments passed to Create.
	CreateCalls [][]string
}

// Create records args and calls CreateFunc, succeeding when it is not set.
func (m *MockEnvironmentCreator) Create(ctx context.Context, args []string, stdout io.Writer) error {
	m.CreateCalls = append(m.CreateCalls, args)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, args, stdout)
	}
	return nil
}

var _ ports.EnvironmentCreator = (*MockEnvironmentCreator)(nil)
