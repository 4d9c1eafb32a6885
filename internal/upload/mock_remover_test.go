package upload

import "github.com/stretchr/testify/mock"

// MockRemover is a testify mock of removal.Remover
type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
