package cmd

import (
	"github.com/stretchr/testify/mock"

	"github.com/jdev-tools/jdex/internal/domain"
)

// mockWorkflow is a testify mock for the domain.Workflow interface, used
// to verify the argument plumbing of the CLI commands.
type mockWorkflow struct {
	mock.Mock
}

func (m *mockWorkflow) Export(args domain.ExportArgs) error {
	return m.Called(args).Error(0)
}

func (m *mockWorkflow) List(args domain.ListArgs) error {
	return m.Called(args).Error(0)
}

func (m *mockWorkflow) Tree(args domain.TreeArgs) error {
	return m.Called(args).Error(0)
}
