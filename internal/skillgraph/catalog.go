package skillgraph

// DefaultCatalog returns the built-in web development learning track.
// The catalog is data, not behavior: swapping it out is a full graph reload.
func DefaultCatalog() []Skill {
	return []Skill{
		// Level 1 roots.
		{
			ID:          "html",
			Name:        "HTML Basics",
			Description: "Structure web pages with semantic HTML elements.",
			Cost:        10,
			Category:    CategoryWebFoundations,
			Level:       1,
		},
		{
			ID:          "programming-logic",
			Name:        "Programming Logic",
			Description: "Variables, conditionals, and loops from first principles.",
			Cost:        10,
			Category:    CategoryProgramming,
			Level:       1,
		},
		{
			ID:          "terminal",
			Name:        "Terminal Fundamentals",
			Description: "Navigate and manipulate files from the command line.",
			Cost:        10,
			Category:    CategoryDevOps,
			Level:       1,
		},

		// Level 2.
		{
			ID:            "css",
			Name:          "CSS Styling",
			Description:   "Style pages with selectors, the box model, and layout.",
			Cost:          15,
			Category:      CategoryWebFoundations,
			Level:         2,
			Prerequisites: []string{"html"},
		},
		{
			ID:            "javascript",
			Name:          "JavaScript Essentials",
			Description:   "Make pages interactive with the language of the web.",
			Cost:          20,
			Category:      CategoryWebFoundations,
			Level:         2,
			Prerequisites: []string{"html", "css"},
		},
		{
			ID:            "python",
			Name:          "Python Basics",
			Description:   "General-purpose scripting with Python syntax and idioms.",
			Cost:          20,
			Category:      CategoryProgramming,
			Level:         2,
			Prerequisites: []string{"programming-logic"},
		},
		{
			ID:            "git",
			Name:          "Git Version Control",
			Description:   "Track, branch, and merge code history.",
			Cost:          15,
			Category:      CategoryDevOps,
			Level:         2,
			Prerequisites: []string{"terminal"},
		},

		// Level 3.
		{
			ID:            "responsive-design",
			Name:          "Responsive Design",
			Description:   "Flexbox, grid, and media queries for every screen.",
			Cost:          25,
			Category:      CategoryWebFoundations,
			Level:         3,
			Prerequisites: []string{"css"},
		},
		{
			ID:            "dom",
			Name:          "DOM Manipulation",
			Description:   "Query and mutate the document tree with JavaScript.",
			Cost:          25,
			Category:      CategoryWebFoundations,
			Level:         3,
			Prerequisites: []string{"javascript"},
		},
		{
			ID:            "data-structures",
			Name:          "Data Structures",
			Description:   "Lists, maps, stacks, and when to reach for each.",
			Cost:          30,
			Category:      CategoryProgramming,
			Level:         3,
			Prerequisites: []string{"python"},
		},
		{
			ID:            "sql",
			Name:          "SQL Queries",
			Description:   "Select, join, and aggregate relational data.",
			Cost:          25,
			Category:      CategoryData,
			Level:         3,
			Prerequisites: []string{"python"},
		},
		{
			ID:            "http-apis",
			Name:          "HTTP & APIs",
			Description:   "Requests, responses, and REST conventions.",
			Cost:          25,
			Category:      CategoryBackend,
			Level:         3,
			Prerequisites: []string{"javascript", "git"},
		},

		// Level 4.
		{
			ID:            "frontend-framework",
			Name:          "Frontend Frameworks",
			Description:   "Component-driven UIs with a modern framework.",
			Cost:          40,
			Category:      CategoryWebFoundations,
			Level:         4,
			Prerequisites: []string{"dom", "responsive-design"},
		},
		{
			ID:            "backend-services",
			Name:          "Backend Services",
			Description:   "Design and ship a server-side API with persistence.",
			Cost:          40,
			Category:      CategoryBackend,
			Level:         4,
			Prerequisites: []string{"http-apis", "sql"},
		},
		{
			ID:            "algorithms",
			Name:          "Algorithms",
			Description:   "Sorting, searching, and complexity analysis.",
			Cost:          40,
			Category:      CategoryProgramming,
			Level:         4,
			Prerequisites: []string{"data-structures"},
		},
		{
			ID:            "data-analysis",
			Name:          "Data Analysis",
			Description:   "Explore and visualize datasets programmatically.",
			Cost:          35,
			Category:      CategoryData,
			Level:         4,
			Prerequisites: []string{"sql", "data-structures"},
		},
		{
			ID:            "ci-cd",
			Name:          "CI/CD Pipelines",
			Description:   "Automate build, test, and deploy flows.",
			Cost:          35,
			Category:      CategoryDevOps,
			Level:         4,
			Prerequisites: []string{"git", "http-apis"},
		},

		// Secret skills: classified like any other, hidden by the
		// presentation layer while locked.
		{
			ID:            "regex",
			Name:          "Regular Expressions",
			Description:   "Pattern matching for text wrangling emergencies.",
			Cost:          20,
			Category:      CategoryProgramming,
			Level:         3,
			Prerequisites: []string{"python"},
			Secret:        true,
		},
		{
			ID:            "debugging",
			Name:          "The Art of Debugging",
			Description:   "Systematic fault isolation under pressure.",
			Cost:          30,
			Category:      CategoryProgramming,
			Level:         4,
			Prerequisites: []string{"data-structures", "git"},
			Secret:        true,
		},
	}
}
