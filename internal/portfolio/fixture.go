package portfolio

var aboutMe = `I specialize in building production-ready, AI-native applications. Currently, I am a
Project Lead at **Careerflow.ai** and have previously engineered automated ML pipelines at Bluestock™.

My core strength lies in bridging the gap between traditional full-stack architecture (MERN)
and modern Generative AI integration (RAG, LLMs).`

var fixture = Data{
	Personal: PersonalInfo{
		Name:     "Santanu Raj",
		Title:    "GenAI & RAG Specialist | Full-Stack Architect",
		Email:    "santanu.raj.30.01@gmail.com",
		LinkedIn: "https://www.linkedin.com/in/santanu-raj-in",
		Location: "Jalandhar, Punjab, India",
		Summary: "I build production-ready, AI-native applications. Bridging the gap between " +
			"traditional full-stack architecture and modern Generative AI integration.",
		Image: "/images/hero-profile.png",
	},
	Roles: []string{
		"System.init(GenAI_Architect)",
		"System.init(MERN_Stack_Dev)",
		"System.init(RAG_Specialist)",
	},
	About: aboutMe,
	Highlights: []Highlight{
		{Value: "2+", Label: "YEARS EXPERIENCE"},
		{Value: "10+", Label: "PROJECTS COMPLETED"},
	},
	Skills: []SkillGroup{
		{
			Category: "AI & GenAI",
			Icon:     "brain-circuit",
			Items:    []string{"LangChain", "RAG Pipelines", "Gemini/Claude API", "LLM Fine-tuning", "Prompt Engineering"},
		},
		{
			Category: "Full Stack",
			Icon:     "globe",
			Items:    []string{"React.js", "Node.js", "Express", "Redux", "Tailwind CSS", "MERN Stack"},
		},
		{
			Category: "Backend & Core",
			Icon:     "terminal",
			Items:    []string{"Python", "Java", "C++", "REST APIs", "Microservices"},
		},
		{
			Category: "Data & DevOps",
			Icon:     "database",
			Items:    []string{"MongoDB", "Docker", "Git", "Pandas", "Oracle SQL"},
		},
	},
	Experience: []ExperienceEntry{
		{
			ID:       1,
			Role:     "Project Lead",
			Company:  "Careerflow.ai",
			Date:     "Dec 2025 - Present",
			Location: "Jalandhar",
			Description: `Contributing to the development and optimization of AI-driven career tools.
			Leading cross-functional teams to translate complex requirements into high-quality code.`,
			Tags: []string{"AI Tools", "Team Leadership", "Optimization"},
		},
		{
			ID:       2,
			Role:     "Software Engineer",
			Company:  "Bluestock™",
			Date:     "Nov 2025 - Jan 2026",
			Location: "New Delhi",
			Description: `Architected automated ML pipelines for financial analysis. Reduced manual data
			processing by 70% for Nifty 100 companies using Python and Pandas.`,
			Tags: []string{"Python", "Pandas", "FinTech", "ML Pipelines"},
		},
		{
			ID:       3,
			Role:     "Full-stack Developer",
			Company:  "EY Global Delivery Services",
			Date:     "Feb 2025 - Apr 2025",
			Location: "New Delhi",
			Description: `Developed scalable web applications using the MERN stack. Designed responsive
			interfaces with React.js and robust RESTful APIs with Node.js.`,
			Tags: []string{"MERN Stack", "REST APIs", "Scalable Web Apps"},
		},
	},
	Projects: []ProjectEntry{
		{
			ID:       1,
			Title:    "FinTech ML Pipeline",
			Category: "Machine Learning",
			Description: `Automated financial analysis pipeline for Nifty 100 companies. Integrated
			Rule-Based ML models with React dashboards.`,
			Tags:  []string{"Python", "React", "Pandas", "ML"},
			Links: Links{Repository: "#", Demo: "#"},
		},
		{
			ID:          2,
			Title:       "AI Career Assistant",
			Category:    "GenAI",
			Description: "RAG-based application for career guidance and resume optimization using Gemini API.",
			Tags:        []string{"GenAI", "RAG", "LangChain", "Node.js"},
			Links:       Links{Repository: "#", Demo: "#"},
		},
		{
			ID:          3,
			Title:       "Scalable MERN Dashboard",
			Category:    "Web App",
			Description: "High-performance dashboard for enterprise data visualization developed during EY tenure.",
			Tags:        []string{"MongoDB", "Express", "React", "Node"},
			Links:       Links{Repository: "#", Demo: "#"},
		},
	},
}
