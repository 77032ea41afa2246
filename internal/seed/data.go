package seed

// The sample dataset for the ITC BLIDA knowledge graph. Personal names are
// replaced by team groups; roles and duties follow the club's public role
// descriptions.

// Department is a club department node.
type Department struct {
	Name  string
	Focus string
}

// Event is a club event node.
type Event struct {
	Name        string
	Date        string
	Description string
	Location    string
	Theme       string
	Format      string
	Source      string
}

// Project is a club project node, led by a department and optionally
// showcased at events.
type Project struct {
	Name           string
	Year           int
	Status         string
	LeadDepartment string
	Description    string
	ShowcasedAt    []string
	Source         string
}

// Partner is an external partner supporting events and projects.
type Partner struct {
	Name             string
	Kind             string
	Focus            string
	SupportsEvents   []string
	SupportsProjects []string
	Source           string
}

// Member is a member group with a department and organizing duties.
type Member struct {
	ID         string
	Name       string
	Role       string
	Joined     int
	Expertise  string
	Department string
	Organizes  []string
	Source     string
}

// Hosting links a department to an event it hosts.
type Hosting struct {
	Department string
	Event      string
}

// Contribution links a member group to a project with a scope.
type Contribution struct {
	MemberID string
	Project  string
	Scope    string
}

var departments = []Department{
	{Name: "Development", Focus: "Software engineering, AI, and cloud hands-on learning"},
	{Name: "Design", Focus: "Brand identity, UI/UX, and motion graphics for club projects"},
	{Name: "Marketing", Focus: "Community engagement, social media, and outreach"},
	{Name: "Content Creation", Focus: "Technical writing, presentation decks, and study material"},
	{Name: "HR", Focus: "Recruitment, onboarding, and member experience"},
	{Name: "Logistics", Focus: "Event operations, venue prep, and budgeting"},
	{Name: "Partnerships", Focus: "Sponsors, alumni, and university relations"},
}

var events = []Event{
	{
		Name:        "ITC TALKS 5.0",
		Date:        "2024-04-27",
		Description: "Flagship annual ITC BLIDA conference with industry speakers and workshops.",
		Location:    "Saad Dahlab University of Blida 1 auditorium",
		Theme:       "Cloud, product, and design",
		Format:      "Conference",
		Source:      "LinkedIn: ITC Blida posts about ITC Talks 5.0 (2024)",
	},
	{
		Name:        "ITC TALKS 4.0",
		Date:        "2023-04-15",
		Description: "Conference edition focused on AI and entrepreneurship with alumni panels.",
		Location:    "Saad Dahlab University of Blida 1 auditorium",
		Theme:       "AI & entrepreneurship",
		Format:      "Conference",
		Source:      "Facebook/LinkedIn recaps of ITC Talks 4.0 (2023)",
	},
	{
		Name:        "Recruitment Day 2024",
		Date:        "2024-10-05",
		Description: "On-campus orientation and department booths for new members.",
		Location:    "Computer science building, Blida 1",
		Theme:       "Community onboarding",
		Format:      "Open day",
		Source:      "Club social channels announcing the 2024 recruitment campaign",
	},
	{
		Name:        "Open Source Sprint",
		Date:        "2024-12-05",
		Description: "Weekend sprint to contribute to tools used by the club and local community.",
		Location:    "Innovation lab, Blida 1",
		Theme:       "Open source",
		Format:      "Hackathon",
		Source:      "Volunteer call for open-source weekend shared on LinkedIn",
	},
	{
		Name:        "DesignCraft",
		Date:        "2024-11-02",
		Description: "Design bootcamp covering storytelling, prototyping, and branding for ITC projects.",
		Location:    "Design studio, Blida 1",
		Theme:       "Product design",
		Format:      "Bootcamp",
		Source:      "Workshop announcement from ITC Blida design team",
	},
}

var projects = []Project{
	{
		Name:           "ITC Website",
		Year:           2024,
		Status:         "In production",
		LeadDepartment: "Design",
		Description:    "Public-facing club website refresh with accessibility improvements and event archive.",
		ShowcasedAt:    []string{"DesignCraft"},
		Source:         "LinkedIn portfolio links for ITC BLIDA website redesign",
	},
	{
		Name:           "AI Study Track",
		Year:           2024,
		Status:         "Ongoing",
		LeadDepartment: "Content Creation",
		Description:    "Peer learning series on machine learning fundamentals shared in weekly sessions.",
		ShowcasedAt:    []string{"Open Source Sprint"},
		Source:         "Weekly study posts shared by ITC BLIDA members",
	},
	{
		Name:           "Event Toolkit",
		Year:           2022,
		Status:         "Maintained",
		LeadDepartment: "Logistics",
		Description:    "Reusable logistics checklist and volunteer scheduling sheets for ITC Talks editions.",
		ShowcasedAt:    []string{"ITC TALKS 4.0"},
		Source:         "Internal toolkit highlighted in ITC Talks volunteer briefings",
	},
	{
		Name:           "Community Newsletter",
		Year:           2023,
		Status:         "Published",
		LeadDepartment: "Marketing",
		Description:    "Monthly email roundup with calls for speakers, partner news, and study-track content.",
		ShowcasedAt:    []string{"Recruitment Day 2024"},
		Source:         "Newsletter signup shared on LinkedIn and Facebook",
	},
}

var partners = []Partner{
	{
		Name:             "Université Saad Dahlab - Blida 1",
		Kind:             "Academic",
		Focus:            "Venue access and administrative support for student initiatives",
		SupportsEvents:   []string{"ITC TALKS 5.0", "ITC TALKS 4.0", "Recruitment Day 2024"},
		SupportsProjects: []string{"Event Toolkit"},
		Source:           "University hosting acknowledgements in ITC Talks event posts",
	},
	{
		Name:             "Google Developer Groups Algeria",
		Kind:             "Community",
		Focus:            "Technical mentorship and speaker connections",
		SupportsEvents:   []string{"Open Source Sprint"},
		SupportsProjects: []string{"AI Study Track"},
		Source:           "Cross-posted GDG collaboration with ITC BLIDA",
	},
	{
		Name:             "Wikimedia Algeria",
		Kind:             "Community",
		Focus:            "Open knowledge outreach and workshops",
		SupportsEvents:   []string{"ITC TALKS 4.0"},
		SupportsProjects: []string{"Community Newsletter"},
		Source:           "Wikimedia Algeria mentorship mentions in ITC activities",
	},
}

var members = []Member{
	{
		ID:         "leadership",
		Name:       "ITC BLIDA Leadership Team",
		Role:       "Executive Board",
		Joined:     2021,
		Expertise:  "Club strategy, partnerships, and alumni relations",
		Department: "HR",
		Organizes:  []string{"ITC TALKS 5.0", "Recruitment Day 2024"},
		Source:     "LinkedIn page listing the ITC BLIDA leadership board",
	},
	{
		ID:         "design-team",
		Name:       "Design Lead Group",
		Role:       "Design Leads",
		Joined:     2022,
		Expertise:  "Design systems, branding, and motion graphics",
		Department: "Design",
		Organizes:  []string{"DesignCraft", "ITC TALKS 5.0"},
		Source:     "Design lead recruitment post for ITC Talks 2024",
	},
	{
		ID:         "dev-team",
		Name:       "Development Core Team",
		Role:       "Technical Leads",
		Joined:     2020,
		Expertise:  "Backend, DevOps, and data engineering",
		Department: "Development",
		Organizes:  []string{"Open Source Sprint"},
		Source:     "Volunteer call for developers for the open-source sprint",
	},
	{
		ID:         "community-team",
		Name:       "Community & Marketing Squad",
		Role:       "Community Managers",
		Joined:     2023,
		Expertise:  "Social media, community programs, and newsletter content",
		Department: "Marketing",
		Organizes:  []string{"Recruitment Day 2024", "ITC TALKS 4.0"},
		Source:     "Social campaign announcing recruitment booths and ITC Talks promotion",
	},
	{
		ID:         "logistics-team",
		Name:       "Logistics Volunteers",
		Role:       "Operations Leads",
		Joined:     2022,
		Expertise:  "Venue operations, budgeting, and vendor coordination",
		Department: "Logistics",
		Organizes:  []string{"ITC TALKS 5.0"},
		Source:     "Volunteer briefing for ITC Talks venue operations",
	},
	{
		ID:         "partnerships-team",
		Name:       "Partnerships Cell",
		Role:       "Partnerships & Sponsorships",
		Joined:     2024,
		Expertise:  "Sponsor outreach and partner follow-up",
		Department: "Partnerships",
		Organizes:  []string{"Open Source Sprint"},
		Source:     "Partnership call-to-action shared ahead of community events",
	},
}

var hostings = []Hosting{
	{Department: "Development", Event: "Open Source Sprint"},
	{Department: "Design", Event: "DesignCraft"},
	{Department: "Marketing", Event: "ITC TALKS 5.0"},
	{Department: "Marketing", Event: "Recruitment Day 2024"},
	{Department: "HR", Event: "Recruitment Day 2024"},
	{Department: "Logistics", Event: "ITC TALKS 5.0"},
	{Department: "Logistics", Event: "ITC TALKS 4.0"},
}

var contributions = []Contribution{
	{MemberID: "dev-team", Project: "ITC Website", Scope: "Backend & infrastructure"},
	{MemberID: "design-team", Project: "ITC Website", Scope: "Design system"},
	{MemberID: "community-team", Project: "Community Newsletter", Scope: "Editorial calendar"},
	{MemberID: "dev-team", Project: "AI Study Track", Scope: "Curriculum notebooks"},
	{MemberID: "logistics-team", Project: "Event Toolkit", Scope: "Operational templates"},
	{MemberID: "partnerships-team", Project: "Community Newsletter", Scope: "Partner spotlights"},
	{MemberID: "leadership", Project: "Event Toolkit", Scope: "Governance & approvals"},
}
