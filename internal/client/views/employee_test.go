package views

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

type fakeApplicationLister struct {
	apps []models.Application
	err  error

	lastEmail string
}

func (f *fakeApplicationLister) ApplicationsByEmployee(ctx context.Context, email string) ([]models.Application, error) {
	f.lastEmail = email
	return f.apps, f.err
}

func TestEmployeeDashboardLoad(t *testing.T) {
	api := &fakeApplicationLister{apps: []models.Application{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusAccepted},
		{ID: 3, Status: models.StatusAccepted},
		{ID: 4, Status: models.StatusRejected},
	}}
	e := NewEmployeeDashboard(api, nil)

	e.Load(context.Background(), "emp@example.com")

	assert.Equal(t, PhaseReady, e.Phase())
	assert.Equal(t, "emp@example.com", api.lastEmail)

	pending, accepted, rejected := e.Counts()
	assert.Equal(t, 1, pending)
	assert.Equal(t, 2, accepted)
	assert.Equal(t, 1, rejected)
}

func TestEmployeeDashboardEmpty(t *testing.T) {
	e := NewEmployeeDashboard(&fakeApplicationLister{}, nil)
	e.Load(context.Background(), "emp@example.com")
	assert.Equal(t, PhaseEmpty, e.Phase())
}

func TestEmployeeDashboardError(t *testing.T) {
	e := NewEmployeeDashboard(&fakeApplicationLister{err: errors.New("boom")}, nil)
	e.Load(context.Background(), "emp@example.com")
	assert.Equal(t, PhaseError, e.Phase())
	assert.Equal(t, msgLoadFailed, e.ErrorMessage())
}
