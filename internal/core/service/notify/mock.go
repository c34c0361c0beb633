package notify

import (
	"github.com/ccheever/cho-upload/internal/core/port"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChangeNotifier is a mock implementation of ChangeNotifier
type MockChangeNotifier struct {
	mock.Mock
}

// NewMockChangeNotifier creates a new MockChangeNotifier
func NewMockChangeNotifier() *MockChangeNotifier {
	return &MockChangeNotifier{}
}

func (m *MockChangeNotifier) Subscribe(push port.PushFunc) uuid.UUID {
	args := m.Called(push)
	return args.Get(0).(uuid.UUID)
}

func (m *MockChangeNotifier) Unsubscribe(id uuid.UUID) {
	m.Called(id)
}

func (m *MockChangeNotifier) Signal() {
	m.Called()
}
