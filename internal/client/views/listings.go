package views

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/logging"
)

type jobSearcher interface {
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	SearchJobs(ctx context.Context, term string) ([]models.JobPosting, error)
}

// Listings is the public job board screen.
type Listings struct {
	lifecycle
	api jobSearcher
	log logging.Logger

	phase  Phase
	jobs   []models.JobPosting
	term   string
	errMsg string
}

func NewListings(api jobSearcher, log logging.Logger) *Listings {
	if log == nil {
		log = logging.NewNop()
	}
	return &Listings{api: api, log: log, phase: PhaseLoading}
}

func (l *Listings) Phase() Phase              { return l.phase }
func (l *Listings) Jobs() []models.JobPosting { return l.jobs }
func (l *Listings) Term() string              { return l.term }
func (l *Listings) ErrorMessage() string      { return l.errMsg }

// Load issues the unfiltered fetch.
func (l *Listings) Load(ctx context.Context) {
	l.term = ""
	l.phase = PhaseLoading
	jobs, err := l.api.ListJobs(ctx)
	l.apply(ctx, jobs, err)
}

// Search issues a filtered fetch for a non-empty term; an empty term returns
// to the unfiltered listing.
func (l *Listings) Search(ctx context.Context, term string) {
	if term == "" {
		l.Load(ctx)
		return
	}
	l.term = term
	l.phase = PhaseLoading
	jobs, err := l.api.SearchJobs(ctx, term)
	l.apply(ctx, jobs, err)
}

func (l *Listings) apply(ctx context.Context, jobs []models.JobPosting, err error) {
	if l.Disposed() {
		return
	}
	if err != nil {
		l.log.Error(ctx, "failed to fetch jobs", "term", l.term, "error", err)
		l.phase = PhaseError
		l.errMsg = msgLoadFailed
		return
	}
	l.errMsg = ""
	l.jobs = jobs
	if len(jobs) == 0 {
		l.phase = PhaseEmpty
		return
	}
	l.phase = PhaseReady
}
