package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctriage/internal/port"
)

// MockTextRecognizer is a mock implementation of port.TextRecognizer.
type MockTextRecognizer struct {
	mock.Mock
}

func (m *MockTextRecognizer) RecognizeText(ctx context.Context, input port.MediaInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
