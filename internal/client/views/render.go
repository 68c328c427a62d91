package views

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/jobdeck/jobdeck/internal/client/chat"
	"github.com/jobdeck/jobdeck/internal/client/models"
)

// Rendering helpers shared by the REPL. Controllers stay renderer-agnostic;
// these functions only read their exported state.

func RenderJobsTable(jobs []models.JobPosting) {
	data := pterm.TableData{{"ID", "Title", "Company", "Type", "Location", "Deadline"}}
	for _, j := range jobs {
		data = append(data, []string{
			strconv.FormatInt(j.ID, 10), j.JobTitle, j.CompanyName,
			string(j.JobType), j.JobLocation, j.DeadLineDate,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func RenderJobDetails(j *models.JobPosting) {
	pterm.DefaultSection.Println(j.JobTitle)
	pterm.Printf("Company:   %s\n", j.CompanyName)
	pterm.Printf("Type:      %s\n", j.JobType)
	pterm.Printf("Location:  %s\n", j.JobLocation)
	pterm.Printf("Posted:    %s\n", j.PostedDate)
	pterm.Printf("Deadline:  %s\n", j.DeadLineDate)
	pterm.Printf("Recruiter: %s\n", j.RecruiterEmail)
	pterm.Println()
	pterm.Println(j.JobDescription)
}

func RenderApplicationsTable(apps []models.Application) {
	data := pterm.TableData{{"ID", "Job", "Company", "Applicant", "Applied", "Status"}}
	for _, a := range apps {
		data = append(data, []string{
			strconv.FormatInt(a.ID, 10), a.JobTitle, a.CompanyName,
			a.EmployeeEmail, a.AppliedDate, string(a.Status),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func RenderStatusCounts(pending, accepted, rejected int) {
	pterm.Printf("Applications: %s pending, %s accepted, %s rejected\n",
		pterm.Yellow(strconv.Itoa(pending)),
		pterm.Green(strconv.Itoa(accepted)),
		pterm.Red(strconv.Itoa(rejected)))
}

// RenderUsersTable lists accounts for the admin roster. The current admin's
// own row is marked and carries no activate/deactivate hint.
func RenderUsersTable(users []models.User, selfEmail string) {
	data := pterm.TableData{{"Name", "Email", "Role", "Active", "Action"}}
	for _, u := range users {
		active := "no"
		if u.IsActive {
			active = "yes"
		}
		action := "deactivate " + u.Email
		if !u.IsActive {
			action = "activate " + u.Email
		}
		if u.Email == selfEmail {
			action = "(you)"
		}
		data = append(data, []string{u.Name, u.Email, string(u.Role), active, action})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func RenderSystemStatus(st *models.SystemStatus) {
	if st == nil {
		return
	}
	pterm.Printf("Users: %d (%d active)   Jobs: %d   Applications: %d\n",
		st.TotalUsers, st.ActiveUsers, st.TotalJobs, st.TotalApplications)
}

func RenderEmployeeProfile(p *models.EmployeeProfile) {
	pterm.DefaultSection.Println("My Profile")
	pterm.Printf("Name:       %s\n", p.Name)
	pterm.Printf("Email:      %s\n", p.Email)
	pterm.Printf("Phone:      %s\n", p.Phone)
	pterm.Printf("Address:    %s\n", p.Address)
	pterm.Printf("Skills:     %s\n", p.Skills)
	pterm.Printf("Experience: %s\n", p.Experience)
}

func RenderRecruiterProfile(p *models.RecruiterProfile) {
	pterm.DefaultSection.Println("Recruiter Profile")
	pterm.Printf("Name:    %s\n", p.Name)
	pterm.Printf("Email:   %s\n", p.Email)
	pterm.Printf("Phone:   %s\n", p.Phone)
	pterm.Printf("Company: %s\n", p.CompanyName)
	pterm.Printf("Address: %s\n", p.CompanyAddress)
}

func RenderTranscript(msgs []chat.Message) {
	for _, m := range msgs {
		RenderChatMessage(m)
	}
}

func RenderChatMessage(m chat.Message) {
	stamp := m.At.Format("15:04")
	if m.Sender == chat.SenderBot {
		pterm.Printf("%s %s\n", pterm.Cyan(fmt.Sprintf("[%s] assistant:", stamp)), m.Text)
	} else {
		pterm.Printf("%s %s\n", pterm.Gray(fmt.Sprintf("[%s] you:", stamp)), m.Text)
	}
}
