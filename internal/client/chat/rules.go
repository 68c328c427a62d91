// Package chat implements the scripted assistant: an ordered list of keyword
// rules mapped to canned responses, plus a transcript-keeping widget. It has
// no dependency on authentication and never calls the network.
package chat

import "strings"

// rule matches when any of its substrings occurs in the lower-cased input.
// Rules are tested in order; the first hit wins.
type rule struct {
	keywords []string
	response string
}

var rules = []rule{
	{
		keywords: []string{"apply", "job application"},
		response: "To apply for a job:\n1. Browse available jobs with the 'jobs' command\n2. Open a job you're interested in\n3. Run 'apply' with its id\n4. Your application will be submitted instantly!",
	},
	{
		keywords: []string{"post", "create job"},
		response: "To post a job:\n1. Go to your recruiter dashboard\n2. Run the 'post' command\n3. Fill in the job details (title, company, description, etc.)\n4. Confirm to publish it!",
	},
	{
		keywords: []string{"profile", "update"},
		response: "To update your profile:\n1. Go to your dashboard\n2. Run the 'profile' command\n3. Edit your information\n4. Save your changes",
	},
	{
		keywords: []string{"status", "application status"},
		response: "To check your application status:\n1. Open your dashboard\n2. View the applications section\n3. You can see status: Pending, Accepted, or Rejected",
	},
	{
		keywords: []string{"register", "sign up"},
		response: "To create an account:\n1. Run the 'register' command\n2. Enter your details (name, email, password)\n3. Select your role (Job Seeker or Recruiter)\n4. Confirm to create your account!",
	},
	{
		keywords: []string{"login", "sign in"},
		response: "To login:\n1. Run the 'login' command\n2. Enter your email and password\n3. You'll land on your dashboard!",
	},
	{
		keywords: []string{"help", "support"},
		response: "I can help you with:\n- Job applications\n- Creating job posts\n- Profile updates\n- Account registration\n- Navigation tips\n\nJust ask me anything!",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		response: "Hello! How can I assist you with the Job Platform today?",
	},
}

const defaultResponse = "I'm here to help! You can ask me about:\n- Applying for jobs\n- Posting job openings\n- Updating your profile\n- Registration and login\nOr just type \"help\" for more options"

// Greeting opens every transcript.
const Greeting = "Hello! I'm your Job Platform assistant. How can I help you today?"

// QuickReplies are suggestions shown while the transcript holds only the
// greeting.
func QuickReplies() []string {
	return []string{
		"How do I apply for a job?",
		"How do I post a job?",
		"Update my profile",
		"Contact support",
	}
}

// Respond lower-cases the input and returns the first matching rule's canned
// response, or the default help message.
func Respond(input string) string {
	msg := strings.ToLower(input)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.response
			}
		}
	}
	return defaultResponse
}
