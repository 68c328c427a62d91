package views

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/logging"
)

type jobApplier interface {
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	Apply(ctx context.Context, req models.ApplyRequest) (*models.Application, error)
}

// Details shows a single posting. The service has no single-item endpoint, so
// the controller fetches the collection and selects by id client-side; a
// missing id yields NotFound.
type Details struct {
	lifecycle
	api jobApplier
	log logging.Logger

	phase   Phase
	job     *models.JobPosting
	message string
}

func NewDetails(api jobApplier, log logging.Logger) *Details {
	if log == nil {
		log = logging.NewNop()
	}
	return &Details{api: api, log: log, phase: PhaseLoading}
}

func (d *Details) Phase() Phase            { return d.phase }
func (d *Details) Job() *models.JobPosting { return d.job }

// Message is the outcome text of the last apply action, empty when none.
func (d *Details) Message() string { return d.message }

func (d *Details) Load(ctx context.Context, id int64) {
	d.phase = PhaseLoading
	jobs, err := d.api.ListJobs(ctx)
	if d.Disposed() {
		return
	}
	if err != nil {
		d.log.Error(ctx, "failed to fetch job details", "job_id", id, "error", err)
		d.phase = PhaseError
		d.message = msgLoadFailed
		return
	}
	for i := range jobs {
		if jobs[i].ID == id {
			d.job = &jobs[i]
			d.phase = PhaseReady
			return
		}
	}
	d.phase = PhaseNotFound
}

// Apply submits an application for the loaded job on behalf of user. The
// employee-only check happens before any call goes out; everything past that
// is the server's verdict.
func (d *Details) Apply(ctx context.Context, user models.UserSummary) bool {
	if d.job == nil {
		return false
	}
	if user.Role != models.RoleEmployee {
		d.message = "Only employees can apply for jobs"
		return false
	}

	_, err := d.api.Apply(ctx, models.ApplyRequest{
		EmployeeEmail:  user.Email,
		JobID:          d.job.ID,
		RecruiterEmail: d.job.RecruiterEmail,
	})
	if d.Disposed() {
		return false
	}
	if err != nil {
		d.log.Error(ctx, "failed to submit application", "job_id", d.job.ID, "error", err)
		d.message = "Failed to submit application"
		return false
	}
	d.message = "Application submitted successfully!"
	return true
}
