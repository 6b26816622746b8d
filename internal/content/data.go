package content

// Default returns the hardcoded portfolio content. Callers get fresh slices
// and may not affect each other.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:      "Brian Nguyen",
			ShortName: "BN",
			Tagline:   "Aspiring software engineer passionate about building secure, user-friendly web experiences.",
			ResumeURL: "/Brian-Nguyen-Resume.pdf",
			Photo:     "/images/profile.jpg",
			CTAs: []Link{
				{Label: "View Resume", Href: "/Brian-Nguyen-Resume.pdf"},
				{Label: "Email Me", Href: "#contact"},
				{Label: "GitHub", Href: "https://github.com/Bnguyen8091"},
			},
			Socials: []Link{
				{Label: "GitHub", Href: "https://github.com/Bnguyen8091"},
				{Label: "LinkedIn", Href: "https://www.linkedin.com/in/briannguyenlinked/"},
				{Label: "Email", Href: "mailto:nguyenbrian562@gmail.com"},
			},
			FooterLinks: []Link{
				{Label: "GitHub", Href: "https://github.com/Bnguyen8091"},
				{Label: "LinkedIn", Href: "https://www.linkedin.com/in/briannguyenlinked/"},
			},
		},
		About: About{
			Paragraphs: []string{
				"I’m a developer who enjoys turning ideas into polished, performant products. " +
					"I love the mix of system design, clean UI, and pragmatic engineering.",
				"Recently, I’ve been focused on React, TypeScript, Node.js, and design systems. " +
					"I care about accessibility, maintainability, and thoughtful details.",
			},
			Highlights: []string{
				"Proficient in Java, PHP, Python, and SQL",
				"Strong web development skills with HTML, CSS, JavaScript, and JSON",
				"Experienced with databases: MySQL and MongoDB",
				"Hands-on with Git, Docker, AWS, Kubernetes, and Visual Studio Code for version control and cloud development",
			},
		},
		Skills: []string{
			"JavaScript", "TypeScript", "React", "Node.js", "Express", "HTML",
			"CSS / Tailwind", "SQL / MySQL", "MongoDB", "Java", "PHP", "Python",
			"Git / GitHub", "VS Code", "Docker", "React", "CSS/Tailwind",
		},
		Projects: []Project{
			{
				Title:   "Helping Hand (Ticketing System)",
				Summary: "A role-based helpdesk app with metrics dashboards, FAQ publishing, and secure flows (CSRF/XSS/SQLi mitigations).",
				Tags:    []string{"Full-stack", "MySQL", "Security", "PHP"},
				Link:    "#",
				Repo:    "https://github.com/Bnguyen8091/Helping-Hand.git",
				Image:   "/images/projects/helpinghand.png",
			},
			{
				Title:   "Personal Budget App",
				Summary: "A budgeting tool with categories, charts, and expense insights. Built with Node/Angular/Express.",
				Tags:    []string{"Web App", "Node", "Charts", "Angular"},
				Link:    "#",
				Repo:    "https://github.com/Bnguyen8091/personal-budget-angular.git",
				Image:   "/images/projects/personalbudget.png",
			},
			{
				Title:   "Hospital Database Management System",
				Summary: "Designed and normalized a hospital database schema with entities for patients, physicians, nurses, rooms, and payments...",
				Tags:    []string{"MySQL", "Database Design", "SQL"},
				Link:    "#",
				Repo:    "#",
				Image:   "/images/projects/hospital.png",
			},
			{
				Title:   "UNCC Student Dashboard",
				Summary: "A centralized portal for UNCC students to view schedules, grades, announcements, and manage tasks with role-based access and JWT authentication.",
				Tags:    []string{"React", "Node", "Express", "MySQL", "Auth"},
				Link:    "#",
				Repo:    "https://github.com/Bnguyen8091/UNCC-Student-Dashboard.git",
				Image:   "/images/projects/dashboard.jpg",
			},
		},
		Experience: []Experience{
			{
				Role:    "Software Developer (Academic Projects)",
				Company: "UNC Charlotte",
				Date:    "2022 – Present",
				Title:   "Full-stack Coursework & Team Projects",
				Bullets: []string{
					"Collaborated on secure helpdesk ticketing system (PHP/MySQL) with metrics and role-based access.",
					"Developed budgeting web app with charts and data insights using Node.js and Angular.",
					"Built portfolio and interactive visualizers with React, Tailwind, and modern JavaScript.",
				},
			},
			{
				Role:    "Undergrad/Grad-Student, UNC Charlotte",
				Company: "UNC Charlotte",
				Date:    "2021 – Present",
				Title:   "CS/IT Coursework",
				Bullets: []string{
					"Security & Privacy, OS/Networking, Algorithm Design.",
					"Team projects: ticketing system, budget app, security labs.",
				},
			},
			{
				Role:    "Frontend Developer (Projects)",
				Company: "UNC Charlotte",
				Date:    "2023 – Present",
				Title:   "UI Development & React Projects",
				Bullets: []string{
					"Designed and implemented responsive UIs with React, Tailwind CSS, and modern JavaScript.",
					"Integrated components with APIs and improved accessibility across projects.",
					"Collaborated with teammates to translate design concepts into functional interfaces.",
				},
			},
		},
		Hobbies: []Hobby{
			{Title: "Pickleball", Desc: "A fun, fast-paced game that keeps me active and competitive while enjoying with friends."},
			{Title: "Streaming & Games", Desc: "Twitch planning, fun rage-moments, and community building."},
			{Title: "Watching Anime", Desc: "Exploring different stories and art styles that inspire creativity and relaxation."},
			{Title: "Hanging Out with Family", Desc: "Spending quality time with loved ones for fun, support, and balance."},
		},
	}
}
