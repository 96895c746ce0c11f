package model

// SeedProjects is the static gallery loaded into the store at boot.
// To add a project, append an entry here; featured entries show on the
// homepage.
var SeedProjects = []Project{
	{
		ID:           "project-1",
		Title:        "Your Project Title Here",
		Description:  "Replace this with a brief description of your project. Keep it to 1-2 sentences that highlight the main features and purpose.",
		ImageURL:     "https://via.placeholder.com/600x400/6366f1/ffffff?text=Project+Screenshot",
		LiveURL:      "https://yourprojecturl.com",
		Technologies: []string{"React", "TypeScript", "Tailwind CSS"},
		Featured:     true,
	},
	{
		ID:           "project-2",
		Title:        "Another Project Title",
		Description:  "Another brief description here. Explain what makes this project special and what problems it solves for users.",
		ImageURL:     "https://via.placeholder.com/600x400/8b5cf6/ffffff?text=Project+Screenshot",
		LiveURL:      "https://anotherproject.com",
		Technologies: []string{"Next.js", "Node.js", "PostgreSQL"},
		Featured:     true,
	},
}
