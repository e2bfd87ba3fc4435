package catalog

// clubData is the built-in club catalog. Entries are ordered by id; the
// scoring engine depends on category, tags, skills offered, time
// commitment, and membership level, so those fields must stay accurate
// for each club.
var clubData = []Club{
	{
		ID:       "acm",
		Name:     "ACM",
		FullName: "Association for Computing Machinery @ UCI",
		Category: "Computer Science",
		Tags:     []string{"programming", "competition", "academic", "professional-development"},
		Description: "Advancing computing as a science and profession through " +
			"competitions and project support.",
		Activities: []string{
			"IEEExtreme Competition",
			"HackerRank Challenges",
			"ICPC Training",
			"Student Project Evaluation",
			"Professional Development Workshops",
		},
		SkillsOffered: []string{
			"Competitive Programming",
			"Algorithm Design",
			"Problem Solving",
			"Team Collaboration",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "Open to all skill levels",
		TimeCommitment:   "Medium to High",
		ClubSize:         "Large (100+ members)",
		KeyPrograms:      []string{"Competition Teams", "Project Incubator", "Industry Mentorship"},
	},
	{
		ID:       "ai",
		Name:     "AI @ UCI",
		FullName: "Artificial Intelligence @ UCI",
		Category: "Artificial Intelligence",
		Tags:     []string{"ai", "machine-learning", "workshops", "real-world-applications"},
		Description: "Introducing students to AI tools and concepts through " +
			"practical workshops.",
		Activities: []string{
			"AI Workshops",
			"Real-world Application Projects",
			"Tool Training Sessions",
			"Industry Case Studies",
		},
		SkillsOffered: []string{
			"Machine Learning",
			"AI Development",
			"Data Analysis",
			"Python Programming",
		},
		MeetingFrequency: "Bi-weekly",
		MembershipLevel:  "Beginner to Advanced",
		TimeCommitment:   "Medium",
		ClubSize:         "Medium (50-100 members)",
		KeyPrograms:      []string{"Hands-on Workshops", "AI Project Showcase", "Industry Partnerships"},
	},
	{
		ID:       "blackInTech",
		Name:     "Black in Tech",
		FullName: "Black in Tech @ UCI",
		Category: "Diversity & Inclusion",
		Tags:     []string{"diversity", "networking", "professional-development", "minority-support"},
		Description: "Empowering minority voices in tech through networking and " +
			"professional development.",
		Activities: []string{
			"Tech Talks",
			"Professional Workshops",
			"Networking Events",
			"Company Site Visits",
			"Internship Guidance",
		},
		SkillsOffered: []string{
			"Professional Networking",
			"Interview Preparation",
			"Career Development",
			"Industry Insight",
		},
		MeetingFrequency: "Monthly",
		MembershipLevel:  "Open to all",
		TimeCommitment:   "Low to Medium",
		ClubSize:         "Medium (30-80 members)",
		KeyPrograms:      []string{"Industry Partnerships", "Mentorship Program", "Career Development Track"},
	},
	{
		ID:       "blockchain",
		Name:     "Blockchain @ UCI",
		FullName: "Blockchain at UCI",
		Category: "Blockchain & Cryptocurrency",
		Tags:     []string{"blockchain", "cryptocurrency", "web3", "hackathons", "education"},
		Description: "Building a blockchain ecosystem through education, " +
			"development, and networking.",
		Activities: []string{
			"Blockchain Workshops",
			"Educational Seminars",
			"Hackathons",
			"Networking Events",
			"Technical Training",
		},
		SkillsOffered: []string{
			"Blockchain Development",
			"Smart Contracts",
			"Cryptocurrency",
			"Web3 Technologies",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "Beginner to Advanced",
		TimeCommitment:   "Medium",
		ClubSize:         "Medium (40-70 members)",
		KeyPrograms:      []string{"Blockchain Bootcamp", "DeFi Projects", "Industry Partnerships"},
	},
	{
		ID:       "commit-the-change",
		Name:     "Commit the Change",
		FullName: "Commit the Change @ UCI",
		Category: "Social Impact",
		Tags:     []string{"social-good", "nonprofit", "software-development", "community-service"},
		Description: "Developing technology for social good through nonprofit " +
			"partnerships.",
		Activities: []string{
			"Nonprofit Software Development",
			"Code Reviews",
			"Design Workshops",
			"Project Management Training",
			"Community Impact Projects",
		},
		SkillsOffered: []string{
			"Full-Stack Development",
			"UI/UX Design",
			"Project Management",
			"Version Control",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "Intermediate to Advanced",
		TimeCommitment:   "High (Year-long commitment)",
		ClubSize:         "Medium (50-80 members)",
		KeyPrograms:      []string{"Nonprofit Matching Program", "Technical Mentorship", "Social Impact Showcase"},
	},
	{
		ID:       "cyber",
		Name:     "Cyber @ UCI",
		FullName: "Cyber @ UCI",
		Category: "Cybersecurity",
		Tags:     []string{"cybersecurity", "hacking", "ctf", "security-research"},
		Description: "Building a cybersecurity community for all experience " +
			"levels.",
		Activities: []string{
			"Capture The Flag (CTF) Competitions",
			"Security Research",
			"Penetration Testing Workshops",
			"Industry Guest Speakers",
			"Security Tool Training",
		},
		SkillsOffered: []string{
			"Ethical Hacking",
			"Network Security",
			"Cryptography",
			"Incident Response",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "All levels welcome",
		TimeCommitment:   "Medium",
		ClubSize:         "Medium (60-90 members)",
		KeyPrograms:      []string{"CTF Team", "Security Research Lab", "Industry Partnerships"},
	},
	{
		ID:       "data",
		Name:     "Data @ UCI",
		FullName: "Data @ UCI",
		Category: "Data Science",
		Tags:     []string{"data-science", "analytics", "workshops", "professional-development"},
		Description: "Nurturing a data science community through workshops and " +
			"professional development.",
		Activities: []string{
			"Data Science Workshops",
			"Professional Panels",
			"Speaker Events",
			"Analytics Projects",
			"Community Outreach",
		},
		SkillsOffered: []string{
			"Data Analysis",
			"Statistical Modeling",
			"Python/R Programming",
			"Data Visualization",
		},
		MeetingFrequency: "Bi-weekly",
		MembershipLevel:  "Beginner to Advanced",
		TimeCommitment:   "Medium",
		ClubSize:         "Large (80-120 members)",
		KeyPrograms:      []string{"Data Analytics Bootcamp", "Industry Connections", "Research Opportunities"},
	},
	{
		ID:       "design",
		Name:     "Design @ UCI",
		FullName: "Design at UCI",
		Category: "Design",
		Tags:     []string{"ux-ui", "product-design", "visual-design", "creativity"},
		Description: "A community for digital designers focused on UX/UI, " +
			"product, and visual design.",
		Activities: []string{
			"Design Workshops",
			"Portfolio Reviews",
			"Design Challenges",
			"Industry Mentorship",
			"Creative Collaborations",
		},
		SkillsOffered: []string{
			"UX/UI Design",
			"Product Design",
			"Visual Design",
			"Design Thinking",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "All skill levels",
		TimeCommitment:   "Medium",
		ClubSize:         "Large (100+ members)",
		KeyPrograms:      []string{"Design Mentorship", "Portfolio Development", "Industry Partnerships"},
	},
	{
		ID:       "hack",
		Name:     "Hack @ UCI",
		FullName: "Hack at UCI",
		Category: "Hackathons",
		Tags:     []string{"hackathons", "innovation", "entrepreneurship", "technology"},
		Description: "Organizing hackathons and tech events to promote " +
			"innovation and learning.",
		Activities: []string{
			"HackUCI (Major Annual Hackathon)",
			"ZotHacks (Beginner Hackathon)",
			"Technical Workshops",
			"Career Panels",
			"Innovation Showcases",
		},
		SkillsOffered: []string{
			"Rapid Prototyping",
			"Full-Stack Development",
			"Innovation",
			"Teamwork",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "All levels",
		TimeCommitment:   "High during events, Medium otherwise",
		ClubSize:         "Large (200+ members)",
		KeyPrograms:      []string{"HackUCI", "ZotHacks", "Tech Workshop Series"},
	},
	{
		ID:       "icssc",
		Name:     "ICSSC",
		FullName: "ICS Student Council",
		Category: "Student Government",
		Tags:     []string{"student-government", "advocacy", "community-building", "professional-development"},
		Description: "Official student government representing ICS students and " +
			"improving their academic and professional experience.",
		Activities: []string{
			"WebJam Competition",
			"Brain Games",
			"ICS Week Festival",
			"Company Info Sessions",
			"Humans of ICS Interviews",
			"Student Advocacy",
		},
		SkillsOffered: []string{
			"Leadership",
			"Event Planning",
			"Public Speaking",
			"Community Building",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "Open to ICS students",
		TimeCommitment:   "High",
		ClubSize:         "Medium (40-60 members)",
		KeyPrograms:      []string{"ICS Week", "Student Representation", "Professional Development"},
	},
	{
		ID:       "quantum",
		Name:     "QC @ UCI",
		FullName: "Quantum Computing @ UCI",
		Category: "Quantum Computing",
		Tags:     []string{"quantum-computing", "research", "algorithms", "interdisciplinary"},
		Description: "Exploring quantum computing through education, research, " +
			"and interdisciplinary collaboration.",
		Activities: []string{
			"Quantum Algorithm Seminars",
			"Hands-on Workshops",
			"Research Projects",
			"Guest Speaker Events",
			"Interdisciplinary Collaborations",
		},
		SkillsOffered: []string{
			"Quantum Algorithms",
			"Quantum Programming",
			"Research Methods",
			"Physics Fundamentals",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "Intermediate to Advanced",
		TimeCommitment:   "Medium to High",
		ClubSize:         "Small (20-40 members)",
		KeyPrograms:      []string{"Quantum Research Lab", "Industry Speaker Series", "Interdisciplinary Projects"},
	},
	{
		ID:       "vgdc",
		Name:     "VGDC",
		FullName: "Video Game Development Club",
		Category: "Game Development",
		Tags:     []string{"game-development", "programming", "art", "game-design"},
		Description: "Supporting game developers through projects, workshops, " +
			"and industry connections.",
		Activities: []string{
			"Quarterly Game Projects",
			"Game Development Workshops",
			"Game Developer's Week",
			"Game Jams",
			"Industry Speaker Events",
			"Portfolio Development",
		},
		SkillsOffered: []string{
			"Game Programming",
			"Game Art",
			"Game Design",
			"Audio Design",
			"UI/UX for Games",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "All skill levels",
		TimeCommitment:   "Medium to High",
		ClubSize:         "Large (80-120 members)",
		KeyPrograms:      []string{"Student Game Projects", "Industry Mentorship", "Portfolio Showcase"},
	},
	{
		ID:       "wics",
		Name:     "WICS",
		FullName: "Women in Information and Computer Sciences",
		Category: "Diversity & Inclusion",
		Tags:     []string{"women-in-tech", "diversity", "mentorship", "professional-development"},
		Description: "Encouraging women in computer science through mentorship, " +
			"networking, and professional development.",
		Activities: []string{
			"Mentorship Programs",
			"Mock Technical Interviews",
			"WICS Games Networking",
			"Grace Hopper Celebration Trip",
			"VenusHacks Hackathon",
			"NetWICS High School Conference",
			"IrisHacks",
		},
		SkillsOffered: []string{
			"Technical Interview Prep",
			"Professional Networking",
			"Leadership",
			"Mentorship",
		},
		MeetingFrequency: "Weekly",
		MembershipLevel:  "Open to all genders",
		TimeCommitment:   "Medium",
		ClubSize:         "Large (150+ members)",
		KeyPrograms:      []string{"Grace Hopper Partnership", "VenusHacks", "High School Outreach"},
	},
}
