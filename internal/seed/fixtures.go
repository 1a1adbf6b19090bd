package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProfileFixture is the YAML shape of the seeded profile.
type ProfileFixture struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Linkedin string `yaml:"linkedin"`
	Github   string `yaml:"github"`
}

// ProjectFixture is the YAML shape of a seeded project.
type ProjectFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	TechStack   string `yaml:"tech_stack"`
	RepoURL     string `yaml:"repo_url"`
	LiveURL     string `yaml:"live_url"`
	ImageURL    string `yaml:"image_url"`
}

// ExperienceFixture is the YAML shape of a seeded experience entry.
type ExperienceFixture struct {
	Company    string   `yaml:"company"`
	Role       string   `yaml:"role"`
	StartDate  string   `yaml:"start_date"`
	EndDate    string   `yaml:"end_date"`
	Location   string   `yaml:"location"`
	Highlights []string `yaml:"highlights"`
}

// SkillFixture is the YAML shape of a seeded skill.
type SkillFixture struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Proficiency string `yaml:"proficiency"`
	IconURL     string `yaml:"icon_url"`
}

// Fixtures is the full seed dataset.
type Fixtures struct {
	Profile     ProfileFixture      `yaml:"profile"`
	Projects    []ProjectFixture    `yaml:"projects"`
	Experiences []ExperienceFixture `yaml:"experiences"`
	Skills      []SkillFixture      `yaml:"skills"`
}

// LoadFixtures reads a YAML fixtures file.
func LoadFixtures(path string) (Fixtures, error) {
	var fixtures Fixtures

	data, err := os.ReadFile(path)
	if err != nil {
		return fixtures, fmt.Errorf("reading fixtures file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return fixtures, fmt.Errorf("parsing fixtures file: %w", err)
	}
	return fixtures, nil
}

// defaultFixtures returns the built-in demo dataset.
func defaultFixtures() Fixtures {
	return Fixtures{
		Profile: ProfileFixture{
			Name:     "Zafar Aftab",
			Title:    "Full-Stack Developer",
			Summary:  "I build performant web apps with React and Go, focusing on clean UX and reliable backends.",
			Location: "Lahore, Pakistan",
			Email:    "you@example.com",
			Phone:    "+92 300 000 0000",
			Linkedin: "https://linkedin.com/in/your-handle",
			Github:   "https://github.com/your-handle",
		},
		Projects: []ProjectFixture{
			{
				Title:       "Invoice Flow",
				Description: "Automated invoicing platform with approvals and reminders.",
				TechStack:   "React, Go, PostgreSQL",
				RepoURL:     "https://github.com/your-handle/invoice-flow",
				LiveURL:     "https://invoice-flow.example.com",
				ImageURL:    "https://images.unsplash.com/photo-1520607162513-77705c0f0d4a",
			},
			{
				Title:       "Insight CRM",
				Description: "Customer intelligence dashboard with real-time activity feeds.",
				TechStack:   "React, Go, Redis, PostgreSQL",
				RepoURL:     "https://github.com/your-handle/insight-crm",
				LiveURL:     "https://insight-crm.example.com",
				ImageURL:    "https://images.unsplash.com/photo-1545239351-1141bd82e8a6",
			},
			{
				Title:       "Pulse Commerce",
				Description: "Headless commerce storefront with personalized recommendations.",
				TechStack:   "React, Go, Stripe, PostgreSQL",
				RepoURL:     "https://github.com/your-handle/pulse-commerce",
				LiveURL:     "https://pulse-commerce.example.com",
				ImageURL:    "https://images.unsplash.com/photo-1522075469751-3a6694fb2f61",
			},
		},
		Experiences: []ExperienceFixture{
			{
				Company:   "Northwind Labs",
				Role:      "Senior Full-Stack Engineer",
				StartDate: "2023",
				EndDate:   "Present",
				Location:  "Remote",
				Highlights: []string{
					"Led migration to React + Go",
					"Improved API latency by 38%",
					"Mentored 4 engineers",
				},
			},
			{
				Company:   "Aperture Digital",
				Role:      "Full-Stack Developer",
				StartDate: "2021",
				EndDate:   "2023",
				Location:  "Lahore",
				Highlights: []string{
					"Built analytics dashboards",
					"Designed PostgreSQL schemas",
					"Owned CI/CD automation",
				},
			},
			{
				Company:   "BlueOrbit",
				Role:      "Frontend Developer",
				StartDate: "2019",
				EndDate:   "2021",
				Location:  "Lahore",
				Highlights: []string{
					"Created responsive UI systems",
					"Partnered with design team",
					"Improved lighthouse score to 95+",
				},
			},
		},
		Skills: []SkillFixture{
			{Name: "Go", Category: "Backend", Proficiency: "Expert"},
			{Name: "PostgreSQL", Category: "Backend", Proficiency: "Expert"},
			{Name: "Redis", Category: "Backend", Proficiency: "Intermediate"},
			{Name: "React", Category: "Frontend", Proficiency: "Expert"},
			{Name: "TypeScript", Category: "Frontend", Proficiency: "Intermediate"},
			{Name: "Docker", Category: "DevOps", Proficiency: "Intermediate"},
			{Name: "Terraform", Category: "DevOps", Proficiency: "Beginner"},
		},
	}
}
