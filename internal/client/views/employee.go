package views

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/logging"
)

type applicationLister interface {
	ApplicationsByEmployee(ctx context.Context, email string) ([]models.Application, error)
}

// EmployeeDashboard lists the signed-in employee's applications with a
// status breakdown.
type EmployeeDashboard struct {
	lifecycle
	api applicationLister
	log logging.Logger

	phase  Phase
	apps   []models.Application
	errMsg string
}

func NewEmployeeDashboard(api applicationLister, log logging.Logger) *EmployeeDashboard {
	if log == nil {
		log = logging.NewNop()
	}
	return &EmployeeDashboard{api: api, log: log, phase: PhaseLoading}
}

func (e *EmployeeDashboard) Phase() Phase                       { return e.phase }
func (e *EmployeeDashboard) Applications() []models.Application { return e.apps }
func (e *EmployeeDashboard) ErrorMessage() string               { return e.errMsg }

// Counts returns (pending, accepted, rejected).
func (e *EmployeeDashboard) Counts() (pending, accepted, rejected int) {
	for _, a := range e.apps {
		switch a.Status {
		case models.StatusAccepted:
			accepted++
		case models.StatusRejected:
			rejected++
		default:
			pending++
		}
	}
	return pending, accepted, rejected
}

func (e *EmployeeDashboard) Load(ctx context.Context, email string) {
	e.phase = PhaseLoading
	apps, err := e.api.ApplicationsByEmployee(ctx, email)
	if e.Disposed() {
		return
	}
	if err != nil {
		e.log.Error(ctx, "failed to fetch applications", "employee", email, "error", err)
		e.phase = PhaseError
		e.errMsg = msgLoadFailed
		return
	}
	e.errMsg = ""
	e.apps = apps
	if len(apps) == 0 {
		e.phase = PhaseEmpty
		return
	}
	e.phase = PhaseReady
}
