package views

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/logging"
)

type recruiterAPI interface {
	JobsByRecruiter(ctx context.Context, email string) ([]models.JobPosting, error)
	ApplicationsByRecruiter(ctx context.Context, email string) ([]models.Application, error)
	CreateJob(ctx context.Context, job models.NewJobPosting) (*models.JobPosting, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.Application, error)
}

// RecruiterDashboard shows the recruiter's postings and incoming
// applications. The two collections are independent, so they are fetched
// concurrently and joined before the view renders; either failure fails the
// whole screen.
type RecruiterDashboard struct {
	lifecycle
	api recruiterAPI
	log logging.Logger

	email string

	phase  Phase
	jobs   []models.JobPosting
	apps   []models.Application
	errMsg string

	// today is a test seam for the postedDate stamp.
	today func() string
}

func NewRecruiterDashboard(api recruiterAPI, log logging.Logger, email string) *RecruiterDashboard {
	if log == nil {
		log = logging.NewNop()
	}
	return &RecruiterDashboard{
		api:   api,
		log:   log,
		email: email,
		phase: PhaseLoading,
		today: func() string { return time.Now().Format("2006-01-02") },
	}
}

func (r *RecruiterDashboard) Phase() Phase                       { return r.phase }
func (r *RecruiterDashboard) Jobs() []models.JobPosting          { return r.jobs }
func (r *RecruiterDashboard) Applications() []models.Application { return r.apps }
func (r *RecruiterDashboard) ErrorMessage() string               { return r.errMsg }

func (r *RecruiterDashboard) Load(ctx context.Context) {
	r.phase = PhaseLoading

	var jobs []models.JobPosting
	var apps []models.Application

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = r.api.JobsByRecruiter(gctx, r.email)
		return err
	})
	g.Go(func() error {
		var err error
		apps, err = r.api.ApplicationsByRecruiter(gctx, r.email)
		return err
	})
	err := g.Wait()

	if r.Disposed() {
		return
	}
	if err != nil {
		r.log.Error(ctx, "failed to fetch recruiter dashboard", "recruiter", r.email, "error", err)
		r.phase = PhaseError
		r.errMsg = msgLoadFailed
		return
	}
	r.errMsg = ""
	r.jobs = jobs
	r.apps = apps
	if len(jobs) == 0 && len(apps) == 0 {
		r.phase = PhaseEmpty
		return
	}
	r.phase = PhaseReady
}

// PostJob publishes a new posting under the recruiter's email and refetches
// the dashboard so the server's state is what gets rendered.
func (r *RecruiterDashboard) PostJob(ctx context.Context, form models.NewJobPosting) bool {
	form.RecruiterEmail = r.email
	form.PostedDate = r.today()

	if _, err := r.api.CreateJob(ctx, form); err != nil {
		if r.Disposed() {
			return false
		}
		r.log.Error(ctx, "failed to create job", "recruiter", r.email, "error", err)
		r.errMsg = msgActionFailed
		return false
	}
	if r.Disposed() {
		return false
	}
	r.Load(ctx)
	return true
}

// UpdateStatus moves an application out of PENDING. Only the two terminal
// states are accepted.
func (r *RecruiterDashboard) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) bool {
	if status != models.StatusAccepted && status != models.StatusRejected {
		r.errMsg = "Applications can only be accepted or rejected"
		return false
	}

	if _, err := r.api.UpdateApplicationStatus(ctx, id, status); err != nil {
		if r.Disposed() {
			return false
		}
		r.log.Error(ctx, "failed to update application status", "application_id", id, "status", status, "error", err)
		r.errMsg = msgActionFailed
		return false
	}
	if r.Disposed() {
		return false
	}
	r.Load(ctx)
	return true
}
