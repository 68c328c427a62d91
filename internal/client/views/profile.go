package views

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/logging"
)

type employeeProfileAPI interface {
	EmployeeProfile(ctx context.Context, email string) (*models.EmployeeProfile, error)
	UpdateEmployeeProfile(ctx context.Context, p models.EmployeeProfile) (*models.EmployeeProfile, error)
}

type recruiterProfileAPI interface {
	RecruiterProfile(ctx context.Context, email string) (*models.RecruiterProfile, error)
	SaveRecruiterProfile(ctx context.Context, p models.RecruiterProfile) (*models.RecruiterProfile, error)
}

// EmployeeProfileView fetches on mount and writes only on an explicit save.
// The email is the row key and never changes client-side.
type EmployeeProfileView struct {
	lifecycle
	api employeeProfileAPI
	log logging.Logger

	email string

	phase   Phase
	profile *models.EmployeeProfile
	message string
}

func NewEmployeeProfileView(api employeeProfileAPI, log logging.Logger, email string) *EmployeeProfileView {
	if log == nil {
		log = logging.NewNop()
	}
	return &EmployeeProfileView{api: api, log: log, email: email, phase: PhaseLoading}
}

func (v *EmployeeProfileView) Phase() Phase                     { return v.phase }
func (v *EmployeeProfileView) Profile() *models.EmployeeProfile { return v.profile }
func (v *EmployeeProfileView) Message() string                  { return v.message }

func (v *EmployeeProfileView) Load(ctx context.Context) {
	v.phase = PhaseLoading
	p, err := v.api.EmployeeProfile(ctx, v.email)
	if v.Disposed() {
		return
	}
	if err != nil {
		v.log.Error(ctx, "failed to fetch employee profile", "employee", v.email, "error", err)
		v.phase = PhaseError
		v.message = msgLoadFailed
		return
	}
	v.profile = p
	v.phase = PhaseReady
}

// Save posts the edited fields, pinning the immutable email, then refetches.
func (v *EmployeeProfileView) Save(ctx context.Context, form models.EmployeeProfile) bool {
	form.Email = v.email

	if _, err := v.api.UpdateEmployeeProfile(ctx, form); err != nil {
		if v.Disposed() {
			return false
		}
		v.log.Error(ctx, "failed to update employee profile", "employee", v.email, "error", err)
		v.message = "Failed to update profile"
		return false
	}
	if v.Disposed() {
		return false
	}
	v.message = "Profile updated successfully!"
	v.Load(ctx)
	return true
}

// RecruiterProfileView mirrors EmployeeProfileView for the recruiter fields.
type RecruiterProfileView struct {
	lifecycle
	api recruiterProfileAPI
	log logging.Logger

	email string

	phase   Phase
	profile *models.RecruiterProfile
	message string
}

func NewRecruiterProfileView(api recruiterProfileAPI, log logging.Logger, email string) *RecruiterProfileView {
	if log == nil {
		log = logging.NewNop()
	}
	return &RecruiterProfileView{api: api, log: log, email: email, phase: PhaseLoading}
}

func (v *RecruiterProfileView) Phase() Phase                      { return v.phase }
func (v *RecruiterProfileView) Profile() *models.RecruiterProfile { return v.profile }
func (v *RecruiterProfileView) Message() string                   { return v.message }

func (v *RecruiterProfileView) Load(ctx context.Context) {
	v.phase = PhaseLoading
	p, err := v.api.RecruiterProfile(ctx, v.email)
	if v.Disposed() {
		return
	}
	if err != nil {
		v.log.Error(ctx, "failed to fetch recruiter profile", "recruiter", v.email, "error", err)
		v.phase = PhaseError
		v.message = msgLoadFailed
		return
	}
	v.profile = p
	v.phase = PhaseReady
}

func (v *RecruiterProfileView) Save(ctx context.Context, form models.RecruiterProfile) bool {
	form.Email = v.email

	if _, err := v.api.SaveRecruiterProfile(ctx, form); err != nil {
		if v.Disposed() {
			return false
		}
		v.log.Error(ctx, "failed to save recruiter profile", "recruiter", v.email, "error", err)
		v.message = "Failed to update profile"
		return false
	}
	if v.Disposed() {
		return false
	}
	v.message = "Profile updated successfully!"
	v.Load(ctx)
	return true
}
