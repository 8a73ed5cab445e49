package gitea

import (
	"context"

	"github.com/JureCacilo/gitea-branch-activity/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockBranchLister is a testify mock for BranchLister, shared by the
// service and command tests.
type MockBranchLister struct {
	mock.Mock
}

var _ BranchLister = (*MockBranchLister)(nil)

func (m *MockBranchLister) ListBranches(ctx context.Context) ([]models.Branch, error) {
	args := m.Called(ctx)
	if branches, ok := args.Get(0).([]models.Branch); ok {
		return branches, args.Error(1)
	}
	return nil, args.Error(1)
}
