package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctriage/internal/port"
)

// MockTranscriber is a mock implementation of port.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, input port.MediaInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
