package views

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/common"
	"github.com/jobdeck/jobdeck/internal/logging"
)

type adminAPI interface {
	Users(ctx context.Context) ([]models.User, error)
	UsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	SetUserStatus(ctx context.Context, email string, isActive bool) error
	SystemStatus(ctx context.Context) (*models.SystemStatus, error)
	CreateJob(ctx context.Context, job models.NewJobPosting) (*models.JobPosting, error)
}

// AdminDashboard shows system totals and the user roster, optionally
// filtered by role. Admins can also post jobs under their own email.
type AdminDashboard struct {
	lifecycle
	api adminAPI
	log logging.Logger

	adminEmail string
	roleFilter models.Role // "" means all users

	phase  Phase
	users  []models.User
	status *models.SystemStatus
	errMsg string

	today func() string
}

func NewAdminDashboard(api adminAPI, log logging.Logger, adminEmail string) *AdminDashboard {
	if log == nil {
		log = logging.NewNop()
	}
	return &AdminDashboard{
		api:        api,
		log:        log,
		adminEmail: adminEmail,
		phase:      PhaseLoading,
		today:      func() string { return time.Now().Format("2006-01-02") },
	}
}

func (a *AdminDashboard) Phase() Phase                 { return a.phase }
func (a *AdminDashboard) UsersList() []models.User     { return a.users }
func (a *AdminDashboard) Status() *models.SystemStatus { return a.status }
func (a *AdminDashboard) RoleFilter() models.Role      { return a.roleFilter }
func (a *AdminDashboard) ErrorMessage() string         { return a.errMsg }

// SetRoleFilter changes the roster filter; the next Load uses it.
func (a *AdminDashboard) SetRoleFilter(role models.Role) { a.roleFilter = role }

func (a *AdminDashboard) Load(ctx context.Context) {
	a.phase = PhaseLoading

	var users []models.User
	var status *models.SystemStatus

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if a.roleFilter == "" {
			users, err = a.api.Users(gctx)
		} else {
			users, err = a.api.UsersByRole(gctx, a.roleFilter)
		}
		return err
	})
	g.Go(func() error {
		var err error
		status, err = a.api.SystemStatus(gctx)
		return err
	})
	err := g.Wait()

	if a.Disposed() {
		return
	}
	if err != nil {
		a.log.Error(ctx, "failed to fetch admin dashboard", "error", err)
		a.phase = PhaseError
		a.errMsg = msgLoadFailed
		return
	}
	a.errMsg = ""
	a.users = users
	a.status = status
	if len(users) == 0 {
		a.phase = PhaseEmpty
		return
	}
	a.phase = PhaseReady
}

// SetUserActive toggles an account. The current admin's own row is refused
// before any call goes out.
func (a *AdminDashboard) SetUserActive(ctx context.Context, email string, active bool) error {
	if email == a.adminEmail {
		return common.ErrSelfUpdate
	}

	if err := a.api.SetUserStatus(ctx, email, active); err != nil {
		if !a.Disposed() {
			a.log.Error(ctx, "failed to update user status", "user", email, "active", active, "error", err)
			a.errMsg = msgActionFailed
		}
		return err
	}
	if a.Disposed() {
		return nil
	}
	a.Load(ctx)
	return nil
}

// PostJob publishes a posting with the admin as the recruiter of record.
func (a *AdminDashboard) PostJob(ctx context.Context, form models.NewJobPosting) bool {
	form.RecruiterEmail = a.adminEmail
	form.PostedDate = a.today()

	if _, err := a.api.CreateJob(ctx, form); err != nil {
		if !a.Disposed() {
			a.log.Error(ctx, "failed to create job", "admin", a.adminEmail, "error", err)
			a.errMsg = msgActionFailed
		}
		return false
	}
	return true
}
