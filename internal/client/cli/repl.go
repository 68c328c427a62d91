package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentRole() models.Role
	Login(ctx context.Context)
	Register(ctx context.Context)
	Logout(ctx context.Context)
	Jobs(ctx context.Context)
	Search(ctx context.Context, term string)
	JobDetails(ctx context.Context, id int64)
	Apply(ctx context.Context, id int64)
	Dashboard(ctx context.Context)
	PostJob(ctx context.Context)
	Profile(ctx context.Context)
	Users(ctx context.Context, role string)
	SetUserActive(ctx context.Context, email string, active bool)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus)
	Chat(ctx context.Context)
}

// runREPL starts a read-eval-print loop for the jobdeck CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handlers print their own outcomes; the loop stays focused on
// parsing and dispatch.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jobdeck %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "jobs":
			a.Jobs(ctx)

		case "search":
			a.Search(ctx, strings.Join(args, " "))

		case "job":
			if id, ok := parseID(args, "Usage: job <id>"); ok {
				a.JobDetails(ctx, id)
			}

		case "apply":
			if id, ok := parseID(args, "Usage: apply <job id>"); ok {
				a.Apply(ctx, id)
			}

		case "dashboard":
			a.Dashboard(ctx)

		case "post":
			a.PostJob(ctx)

		case "profile":
			a.Profile(ctx)

		case "users":
			role := ""
			if len(args) > 0 {
				role = args[0]
			}
			a.Users(ctx, role)

		case "activate", "deactivate":
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <email>", cmd))
				continue
			}
			a.SetUserActive(ctx, args[0], cmd == "activate")

		case "accept":
			if id, ok := parseID(args, "Usage: accept <application id>"); ok {
				a.UpdateStatus(ctx, id, models.StatusAccepted)
			}

		case "reject":
			if id, ok := parseID(args, "Usage: reject <application id>"); ok {
				a.UpdateStatus(ctx, id, models.StatusRejected)
			}

		case "chat":
			a.Chat(ctx)

		case "login":
			a.Login(ctx)

		case "register":
			a.Register(ctx)

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return id, true
}

func printHelp(a execIface) {
	printlnFn("Available commands: jobs, search <term>, job <id>, chat, help, exit")
	if !a.isLoggedIn() {
		printlnFn("Account: login, register")
		return
	}
	switch a.currentRole() {
	case models.RoleEmployee:
		printlnFn("Employee: apply <job id>, dashboard, profile, logout")
	case models.RoleRecruiter:
		printlnFn("Recruiter: dashboard, post, accept <id>, reject <id>, profile, logout")
	case models.RoleAdmin:
		printlnFn("Admin: dashboard, users [role], activate <email>, deactivate <email>, post, logout")
	}
}
