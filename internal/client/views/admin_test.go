package views

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/common"
)

type fakeAdminAPI struct {
	users  []models.User
	status *models.SystemStatus

	usersErr  error
	statusErr error
	setErr    error

	roleQueries  []models.Role
	listAllCalls int
	setCalls     []struct {
		email  string
		active bool
	}
}

func (f *fakeAdminAPI) Users(ctx context.Context) ([]models.User, error) {
	f.listAllCalls++
	return f.users, f.usersErr
}

func (f *fakeAdminAPI) UsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	f.roleQueries = append(f.roleQueries, role)
	var out []models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, f.usersErr
}

func (f *fakeAdminAPI) SetUserStatus(ctx context.Context, email string, isActive bool) error {
	f.setCalls = append(f.setCalls, struct {
		email  string
		active bool
	}{email, isActive})
	if f.setErr != nil {
		return f.setErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].IsActive = isActive
		}
	}
	return nil
}

func (f *fakeAdminAPI) SystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	return f.status, f.statusErr
}

func (f *fakeAdminAPI) CreateJob(ctx context.Context, job models.NewJobPosting) (*models.JobPosting, error) {
	return &models.JobPosting{ID: 1, JobTitle: job.JobTitle, RecruiterEmail: job.RecruiterEmail}, nil
}

func adminFixture() *fakeAdminAPI {
	return &fakeAdminAPI{
		users: []models.User{
			{ID: 1, Name: "Ada", Email: "admin@example.com", Role: models.RoleAdmin, IsActive: true},
			{ID: 2, Name: "Eve", Email: "emp@example.com", Role: models.RoleEmployee, IsActive: true},
			{ID: 3, Name: "Rob", Email: "rec@acme.com", Role: models.RoleRecruiter, IsActive: false},
		},
		status: &models.SystemStatus{TotalUsers: 3, ActiveUsers: 2, TotalJobs: 5, TotalApplications: 7},
	}
}

func TestAdminDashboardLoad(t *testing.T) {
	a := NewAdminDashboard(adminFixture(), nil, "admin@example.com")

	a.Load(context.Background())

	assert.Equal(t, PhaseReady, a.Phase())
	assert.Len(t, a.UsersList(), 3)
	require.NotNil(t, a.Status())
	assert.Equal(t, 3, a.Status().TotalUsers)
}

func TestAdminDashboardRoleFilter(t *testing.T) {
	api := adminFixture()
	a := NewAdminDashboard(api, nil, "admin@example.com")
	a.SetRoleFilter(models.RoleEmployee)

	a.Load(context.Background())

	require.Len(t, a.UsersList(), 1)
	assert.Equal(t, "emp@example.com", a.UsersList()[0].Email)
	assert.Equal(t, []models.Role{models.RoleEmployee}, api.roleQueries)
	assert.Zero(t, api.listAllCalls)
}

func TestAdminDashboardEitherFetchFailsScreen(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeAdminAPI
	}{
		{"roster fetch fails", &fakeAdminAPI{usersErr: errors.New("boom")}},
		{"status fetch fails", &fakeAdminAPI{statusErr: errors.New("boom")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdminDashboard(tt.api, nil, "admin@example.com")
			a.Load(context.Background())
			assert.Equal(t, PhaseError, a.Phase())
			assert.Equal(t, msgLoadFailed, a.ErrorMessage())
		})
	}
}

func TestAdminDashboardSetUserActive(t *testing.T) {
	api := adminFixture()
	a := NewAdminDashboard(api, nil, "admin@example.com")
	a.Load(context.Background())

	err := a.SetUserActive(context.Background(), "rec@acme.com", true)

	require.NoError(t, err)
	require.Len(t, api.setCalls, 1)
	assert.Equal(t, "rec@acme.com", api.setCalls[0].email)
	assert.True(t, api.setCalls[0].active)

	// refetch picked up the flip
	for _, u := range a.UsersList() {
		if u.Email == "rec@acme.com" {
			assert.True(t, u.IsActive)
		}
	}
}

func TestAdminDashboardRefusesSelfUpdate(t *testing.T) {
	api := adminFixture()
	a := NewAdminDashboard(api, nil, "admin@example.com")

	err := a.SetUserActive(context.Background(), "admin@example.com", false)

	assert.ErrorIs(t, err, common.ErrSelfUpdate)
	assert.Empty(t, api.setCalls, "no request should go out")
}

func TestAdminDashboardSetUserActiveError(t *testing.T) {
	api := adminFixture()
	api.setErr = errors.New("boom")
	a := NewAdminDashboard(api, nil, "admin@example.com")

	err := a.SetUserActive(context.Background(), "emp@example.com", false)

	assert.Error(t, err)
	assert.Equal(t, msgActionFailed, a.ErrorMessage())
}

func TestAdminDashboardPostJob(t *testing.T) {
	a := NewAdminDashboard(adminFixture(), nil, "admin@example.com")
	a.today = func() string { return "2024-05-01" }

	ok := a.PostJob(context.Background(), models.NewJobPosting{JobTitle: "Data Engineer"})

	assert.True(t, ok)
}
