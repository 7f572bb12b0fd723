// Package assistant implements the AI career assistant: prompt assembly,
// reply normalization and bounded per-session conversation history.
package assistant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rishabh-cloud/portfolio-api/internal/intent"
)

// Persona bundles the static instruction block and the per-intent suggestion
// tables. A YAML file can override any field; everything else keeps the
// compiled-in defaults.
type Persona struct {
	SystemPrompt     string              `yaml:"system_prompt"`
	Suggestions      map[string][]string `yaml:"suggestions"`
	ErrorSuggestions []string            `yaml:"error_suggestions"`
}

const defaultSystemPrompt = `You are Rishabh's AI Career Assistant - an intelligent, engaging chatbot for his portfolio site.

PERSONALITY:
- Professional yet conversational
- Proactive in highlighting relevant achievements
- Ask clarifying questions when needed
- Provide specific examples and metrics

KNOWLEDGE BASE:
- AWS Certified Solutions Architect - Associate (2025)
- Team Computers (2023-Present), Cloud Engineer: re-architected a fintech monolith into EKS microservices, 10x scalability, zero-downtime migration. Tech: EKS, Aurora, Kubernetes, Terraform.
- TECHVED Consulting (2021-2023), DevOps Consultant: built SpendWise, an automated cost optimization tool with 20% average savings. Tech: Lambda, CloudWatch, Cost Explorer, Python.
- Key projects: this serverless portfolio site (S3, CloudFront, Lambda, DynamoDB, Bedrock chatbot, Terraform), SpendWise cost dashboard, scalable multi-AZ WordPress blog (99.9% uptime, 10k+ concurrent users).
- Skills: AWS, Terraform, CloudFormation, Docker, Kubernetes, Helm, GitHub Actions, Jenkins, CloudWatch, Prometheus, Grafana, Python, JavaScript, Bash, Aurora, DynamoDB, PostgreSQL.

AVAILABLE ACTIONS:
1. schedule_meeting - Opens email to schedule a discussion
2. download_resume - Triggers resume download
3. show_projects - Scrolls to projects section
4. show_experience - Scrolls to experience section
5. show_skills - Scrolls to skills section

RESPONSE FORMAT:
Always respond in JSON:
{
  "message": "Your engaging response with specific details",
  "actions": [{"type": "action_name", "data": {}}],
  "suggestions": ["Follow-up question 1", "Follow-up question 2"]
}

IMPORTANT:
- Be specific with numbers and achievements
- Match tone to the visitor's intent
- Keep responses concise but informative (2-3 sentences max)`

func defaultSuggestions() map[string][]string {
	return map[string][]string{
		string(intent.Hiring): {
			"What's your experience with AWS?",
			"Tell me about your biggest achievement",
			"Can we schedule a call?",
		},
		string(intent.Technical): {
			"How did you implement the EKS migration?",
			"What's your approach to cost optimization?",
			"Tell me about your Terraform expertise",
		},
		string(intent.Experience): {
			"What was your role at Team Computers?",
			"Tell me about the SpendWise project",
			"What challenges did you overcome?",
		},
		string(intent.Skills): {
			"What AWS services do you specialize in?",
			"Do you have Kubernetes experience?",
			"What's your DevOps toolkit?",
		},
		string(intent.Contact): {
			"Schedule a meeting",
			"Download resume",
			"View LinkedIn profile",
		},
		string(intent.General): {
			"What are you looking for?",
			"Tell me about your projects",
			"What's your AWS expertise?",
		},
	}
}

// DefaultPersona returns the compiled-in persona matching the production
// prompt and suggestion tables.
func DefaultPersona() *Persona {
	return &Persona{
		SystemPrompt: defaultSystemPrompt,
		Suggestions:  defaultSuggestions(),
		ErrorSuggestions: []string{
			"Try asking about my experience",
			"What projects have I worked on?",
			"How can I help you?",
		},
	}
}

// LoadPersona reads a YAML persona file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func LoadPersona(path string) (*Persona, error) {
	p := DefaultPersona()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read persona file: %w", err)
	}

	var override Persona
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse persona file: %w", err)
	}

	if override.SystemPrompt != "" {
		p.SystemPrompt = override.SystemPrompt
	}
	for label, list := range override.Suggestions {
		if !intent.Valid(label) {
			return nil, fmt.Errorf("persona file: unknown intent label %q", label)
		}
		p.Suggestions[label] = list
	}
	if len(override.ErrorSuggestions) > 0 {
		p.ErrorSuggestions = override.ErrorSuggestions
	}
	return p, nil
}

// SuggestionsFor returns a copy of the default follow-up list for the label,
// falling back to the GENERAL list.
func (p *Persona) SuggestionsFor(label intent.Intent) []string {
	list, ok := p.Suggestions[string(label)]
	if !ok || len(list) == 0 {
		list = p.Suggestions[string(intent.General)]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
