package views

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

type fakeJobApplier struct {
	jobs     []models.JobPosting
	listErr  error
	applyErr error

	applied []models.ApplyRequest
}

func (f *fakeJobApplier) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	return f.jobs, f.listErr
}

func (f *fakeJobApplier) Apply(ctx context.Context, req models.ApplyRequest) (*models.Application, error) {
	f.applied = append(f.applied, req)
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	return &models.Application{ID: 10, JobID: req.JobID, Status: models.StatusPending}, nil
}

func TestDetailsLoad(t *testing.T) {
	d := NewDetails(&fakeJobApplier{jobs: sampleJobs()}, nil)
	d.Load(context.Background(), 2)

	require.Equal(t, PhaseReady, d.Phase())
	require.NotNil(t, d.Job())
	assert.Equal(t, "SRE", d.Job().JobTitle)
}

func TestDetailsLoadNotFound(t *testing.T) {
	d := NewDetails(&fakeJobApplier{jobs: sampleJobs()}, nil)
	d.Load(context.Background(), 99)
	assert.Equal(t, PhaseNotFound, d.Phase())
	assert.Nil(t, d.Job())
}

func TestDetailsLoadError(t *testing.T) {
	d := NewDetails(&fakeJobApplier{listErr: errors.New("boom")}, nil)
	d.Load(context.Background(), 1)
	assert.Equal(t, PhaseError, d.Phase())
	assert.Equal(t, msgLoadFailed, d.Message())
}

func TestDetailsApply(t *testing.T) {
	api := &fakeJobApplier{jobs: sampleJobs()}
	d := NewDetails(api, nil)
	d.Load(context.Background(), 1)

	ok := d.Apply(context.Background(), models.UserSummary{
		Email: "emp@example.com", Role: models.RoleEmployee,
	})

	assert.True(t, ok)
	assert.Equal(t, "Application submitted successfully!", d.Message())
	require.Len(t, api.applied, 1)
	assert.Equal(t, models.ApplyRequest{
		EmployeeEmail:  "emp@example.com",
		JobID:          1,
		RecruiterEmail: "rec@acme.com",
	}, api.applied[0])
}

func TestDetailsApplyNonEmployee(t *testing.T) {
	api := &fakeJobApplier{jobs: sampleJobs()}
	d := NewDetails(api, nil)
	d.Load(context.Background(), 1)

	ok := d.Apply(context.Background(), models.UserSummary{Role: models.RoleRecruiter})

	assert.False(t, ok)
	assert.Equal(t, "Only employees can apply for jobs", d.Message())
	assert.Empty(t, api.applied, "no request should go out")
}

func TestDetailsApplyServerError(t *testing.T) {
	api := &fakeJobApplier{jobs: sampleJobs(), applyErr: errors.New("boom")}
	d := NewDetails(api, nil)
	d.Load(context.Background(), 1)

	ok := d.Apply(context.Background(), models.UserSummary{Role: models.RoleEmployee})

	assert.False(t, ok)
	assert.Equal(t, "Failed to submit application", d.Message())
}

func TestDetailsApplyWithoutJob(t *testing.T) {
	d := NewDetails(&fakeJobApplier{}, nil)
	assert.False(t, d.Apply(context.Background(), models.UserSummary{Role: models.RoleEmployee}))
}
