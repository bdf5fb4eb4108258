// Package coach implements the scripted career-coach chat: a pure
// (role, free text) -> response lookup over a static keyword table. There is
// no model behind it and no state; it exists so the portal has a coach
// surface without any AI dependency.
package coach

import (
	"strings"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
)

// QuickAction is a suggested prompt shown alongside the greeting.
type QuickAction struct {
	Label  string
	Prompt string
}

type rule struct {
	keywords []string
	response string
}

// Greeting returns the role-specific opening message.
func Greeting(role sdk.Role) string {
	switch role {
	case sdk.RoleCandidate:
		return "Hi! I'm your Career Coach. I can help with interview preparation, resume tips, career advice, and job search strategies. What would you like help with today?"
	case sdk.RoleRecruiter:
		return "Hi! I'm your Recruitment Assistant. I can help with job descriptions, candidate screening, interview questions, and inclusive hiring. How can I assist you today?"
	case sdk.RoleAdmin:
		return "Hi! I'm your Admin Assistant. I can help with user management, analytics interpretation, and platform security. What would you like to know?"
	default:
		return "Hi! How can I help you today?"
	}
}

// QuickActions returns the role's suggested prompts.
func QuickActions(role sdk.Role) []QuickAction {
	switch role {
	case sdk.RoleCandidate:
		return []QuickAction{
			{Label: "Interview Tips", Prompt: "Give me tips for preparing for a technical interview"},
			{Label: "Resume Review", Prompt: "How can I improve my resume?"},
			{Label: "Career Advice", Prompt: "What skills should I learn for career growth?"},
			{Label: "Job Search", Prompt: "How do I find the right job opportunities?"},
		}
	case sdk.RoleRecruiter:
		return []QuickAction{
			{Label: "Job Description", Prompt: "How to write an effective job description?"},
			{Label: "Screen Candidates", Prompt: "Best practices for screening candidates"},
			{Label: "Interview Questions", Prompt: "Suggest interview questions for a developer role"},
			{Label: "Diversity Hiring", Prompt: "Tips for inclusive hiring practices"},
		}
	case sdk.RoleAdmin:
		return []QuickAction{
			{Label: "User Management", Prompt: "Best practices for managing users"},
			{Label: "Analytics", Prompt: "How to interpret platform analytics?"},
			{Label: "Security", Prompt: "Security best practices for the platform"},
		}
	default:
		return nil
	}
}

var candidateRules = []rule{
	{
		keywords: []string{"interview"},
		response: "Key interview tips:\n" +
			"1. Research the company: products, culture, recent news\n" +
			"2. Practice common behavioral and technical questions\n" +
			"3. Use the STAR method: Situation, Task, Action, Result\n" +
			"4. Prepare thoughtful questions about the role and team\n" +
			"5. Follow up with a thank-you note within 24 hours",
	},
	{
		keywords: []string{"resume", "cv"},
		response: "Tips for an effective resume:\n" +
			"1. Keep it concise: 1-2 pages maximum\n" +
			"2. Quantify achievements with numbers and metrics\n" +
			"3. Tailor it to each job posting\n" +
			"4. Start bullets with strong action verbs\n" +
			"5. Match keywords from the job description\n" +
			"6. Proofread: zero typos",
	},
	{
		keywords: []string{"skill", "learn"},
		response: "In-demand skills right now:\n" +
			"Technical: cloud computing, machine learning, data analysis, security, full-stack development.\n" +
			"Soft: communication, problem-solving, adaptability, leadership.\n" +
			"Focus on the ones that align with your career goals.",
	},
	{
		keywords: []string{"job", "search"},
		response: "Effective job search strategies:\n" +
			"1. Keep your profile up to date\n" +
			"2. Network actively\n" +
			"3. Use multiple platforms and set up alerts\n" +
			"4. Customize every application\n" +
			"5. Follow up after 1-2 weeks\n" +
			"The portal's matching can surface your best-fit openings.",
	},
}

var recruiterRules = []rule{
	{
		keywords: []string{"job description", "jd"},
		response: "Writing an effective job description:\n" +
			"1. Use a clear, searchable job title\n" +
			"2. Hook candidates in the first paragraph\n" +
			"3. Separate must-have from nice-to-have skills\n" +
			"4. Be concrete about day-to-day responsibilities\n" +
			"5. Use inclusive language and publish a salary range\n" +
			"Run the bias detector before posting.",
	},
	{
		keywords: []string{"screen", "candidate"},
		response: "Candidate screening best practices:\n" +
			"1. Start from the match scores, focus on 60%+ matches\n" +
			"2. Check whether missing skills are trainable\n" +
			"3. Do a short phone screen before a full interview\n" +
			"4. Apply the same criteria to every candidate\n" +
			"5. Verify key claims with references",
	},
	{
		keywords: []string{"interview question"},
		response: "Effective interview questions:\n" +
			"Technical: \"Walk me through your approach to a specific problem\", \"Explain a complex concept to a non-technical person\".\n" +
			"Behavioral: \"Tell me about a time you disagreed with a teammate\", \"Describe a failure and what you learned\".",
	},
	{
		keywords: []string{"diversity", "inclusive", "bias"},
		response: "Inclusive hiring tips:\n" +
			"1. Use gender-neutral language in postings\n" +
			"2. Structure interviews identically for all candidates\n" +
			"3. Use diverse interview panels\n" +
			"4. Evaluate skills with work samples, not pedigree",
	},
}

var adminRules = []rule{
	{
		keywords: []string{"user", "manage"},
		response: "User management practices:\n" +
			"1. Grant the least role that covers the need\n" +
			"2. Review role assignments regularly\n" +
			"3. Watch the audit logs for unusual activity\n" +
			"4. Deactivate dormant accounts",
	},
	{
		keywords: []string{"analytic", "metric"},
		response: "Reading the platform analytics:\n" +
			"Pipeline stats show where applications stall; the match distribution shows posting quality; time-to-shortlist trends reveal process bottlenecks.",
	},
	{
		keywords: []string{"security", "secure"},
		response: "Platform security practices:\n" +
			"1. Enforce strong passwords\n" +
			"2. Keep admin accounts to a minimum\n" +
			"3. Audit role changes\n" +
			"4. Sessions are invalidated server-side; expired tokens force a fresh login",
	},
}

const fallbackResponse = "I can help with that. Could you tell me a bit more about what you're looking for? You can also try one of the quick actions."

// Respond matches the message against the role's keyword table and returns
// the first canned response, or a generic fallback. Pure function; the same
// input always produces the same output.
func Respond(role sdk.Role, message string) string {
	lower := strings.ToLower(message)

	var rules []rule
	switch role {
	case sdk.RoleCandidate:
		rules = candidateRules
	case sdk.RoleRecruiter:
		rules = recruiterRules
	case sdk.RoleAdmin:
		rules = adminRules
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.response
			}
		}
	}
	return fallbackResponse
}
