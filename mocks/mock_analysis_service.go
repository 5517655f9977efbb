package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctriage/internal/classifier"
	"doctriage/internal/domain"
	"doctriage/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Classify(ctx context.Context, text string, fields []domain.Field, hint domain.DocumentType) (*classifier.Result, error) {
	args := m.Called(ctx, text, fields, hint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classifier.Result), args.Error(1)
}

func (m *MockAnalysisService) Extract(ctx context.Context, text string, documentType domain.DocumentType) ([]domain.Field, error) {
	args := m.Called(ctx, text, documentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Field), args.Error(1)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, text string, fields []domain.Field, hint domain.DocumentType) (*service.AnalysisResult, error) {
	args := m.Called(ctx, text, fields, hint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisResult), args.Error(1)
}
