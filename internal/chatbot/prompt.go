package chatbot

import (
	"fmt"
	"strings"
)

// Portfolio is the owner profile the assistant answers about.
type Portfolio struct {
	Name       string
	Title      string
	Phone      string
	Email      string
	Skills     []string
	Projects   []Project
	Experience []Experience
	Education  []Education
}

type Project struct {
	Name        string
	Description string
	Tech        []string
}

type Experience struct {
	Company string
	Role    string
	Period  string
}

type Education struct {
	Degree      string
	Result      string
	Institution string
}

// DefaultPortfolio returns the profile rendered into every session's preamble.
func DefaultPortfolio() Portfolio {
	return Portfolio{
		Name:  "Ayub Khan J",
		Title: "Junior App Developer | Flutter & Dart Specialist",
		Phone: "+91 7904463409",
		Email: "kayub1601@gmail.com",
		Skills: []string{
			"Flutter", "Dart", "Next.js", "Python", "HTML", "CSS",
			"Postman", "Android Studio", "Xcode", "Firebase", "Git",
		},
		Projects: []Project{
			{
				Name:        "GPRS",
				Description: "Service booking app for home appliances with call masking for secure communication.",
				Tech:        []string{"Flutter", "Dart", "Postman"},
			},
			{
				Name:        "Pilling",
				Description: "Construction management app with task tracking and SOS quick-call feature.",
				Tech:        []string{"Flutter", "Dart", "Android Studio"},
			},
			{
				Name:        "Flicky",
				Description: "Short-form video sharing app with advanced media features like trimming and audio merging.",
				Tech:        []string{"Flutter", "Dart", "Postman"},
			},
			{
				Name:        "Hi-Tech Constructions Website",
				Description: "Responsive website for construction company showcasing services and projects.",
				Tech:        []string{"HTML", "CSS"},
			},
			{
				Name:        "WhatsApp Automation",
				Description: "Python automation tool for bulk WhatsApp messages using Selenium.",
				Tech:        []string{"Python", "Selenium", "ChromeDriver"},
			},
		},
		Experience: []Experience{
			{Company: "Codegen Solutions", Role: "Junior App Developer", Period: "June 2024 – Present"},
			{Company: "Coderzbot Technology", Role: "Junior App Developer", Period: "April 2023 – May 2024"},
		},
		Education: []Education{
			{Degree: "B.Sc Computer Science", Result: "7.2 CGPA", Institution: "Periyar University"},
			{Degree: "XII", Result: "62%", Institution: "Govt Boys Higher Secondary"},
			{Degree: "X", Result: "80%", Institution: "Govt Boys Higher Secondary School"},
		},
	}
}

// SystemPrompt renders the portfolio into the fixed system preamble seeded
// as history[0] of every session.
func (p Portfolio) SystemPrompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an AI assistant for %s's portfolio. Provide helpful, friendly, and concise responses (2-3 sentences max).\n\n", p.Name)
	fmt.Fprintf(&b, "PORTFOLIO INFO:\nName: %s\nRole: %s\nPhone: %s\nEmail: %s\n\n", p.Name, p.Title, p.Phone, p.Email)
	fmt.Fprintf(&b, "Skills: %s\n\n", strings.Join(p.Skills, ", "))

	b.WriteString("Projects:\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "- %s: %s (Tech: %s)\n", pr.Name, pr.Description, strings.Join(pr.Tech, ", "))
	}

	b.WriteString("\nExperience:\n")
	for _, e := range p.Experience {
		fmt.Fprintf(&b, "- %s as %s (%s)\n", e.Company, e.Role, e.Period)
	}

	b.WriteString("\nEducation:\n")
	for _, e := range p.Education {
		fmt.Fprintf(&b, "- %s %s from %s\n", e.Degree, e.Result, e.Institution)
	}

	b.WriteString("\nKeep responses brief and helpful. For detailed inquiries, suggest contacting via email or phone.")

	return b.String()
}
