package advisor

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAdvisor is a testify mock of Advisor for command tests.
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Analyze(ctx context.Context, req Request) (Advice, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Advice), args.Error(1)
}

func (m *MockAdvisor) Close() error {
	return m.Called().Error(0)
}
