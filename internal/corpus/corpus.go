// Package corpus holds the embedded candidate profile corpus.
// The corpus is compiled into the binary, initialized once, and exposed only
// through read accessors; it is safe to share across concurrent requests.
package corpus

import "github.com/jonathan/deep-job-seek/internal/types"

// Profiles returns the full candidate corpus. Callers must treat the returned
// data as read-only.
func Profiles() []types.CandidateProfile {
	return profiles
}

// FlattenExperiences flattens every work entry in the corpus into a single
// searchable sequence, carrying the owning candidate's name and skills along.
func FlattenExperiences() []types.Experience {
	var experiences []types.Experience
	for _, person := range profiles {
		for _, work := range person.Work {
			experiences = append(experiences, types.Experience{
				Person:     person.Basics.Name,
				Company:    work.Company,
				Position:   work.Position,
				Summary:    work.Summary,
				Highlights: work.Highlights,
				Skills:     person.Skills,
			})
		}
	}
	return experiences
}

var profiles = []types.CandidateProfile{
	{
		Basics: types.Basics{
			Name:    "John Doe",
			Email:   "john.doe@example.com",
			Phone:   "+1-555-0123",
			Summary: "Full-stack software engineer with 5 years of experience in Python, Flask, and API development",
		},
		Work: []types.WorkEntry{
			{
				Company:   "Tech Corp",
				Position:  "Senior Software Engineer",
				StartDate: "2021-01-01",
				EndDate:   "2024-01-01",
				Summary:   "Developed REST APIs using Flask and Python, implemented vector search with Qdrant",
				Highlights: []string{
					"Built scalable APIs handling 10K+ requests/day",
					"Implemented vector search with Qdrant for 90% faster queries",
					"Led team of 3 developers on microservices architecture",
					"Reduced API response time by 60% through optimization",
				},
			},
			{
				Company:   "StartupXYZ",
				Position:  "Python Developer",
				StartDate: "2019-06-01",
				EndDate:   "2020-12-31",
				Summary:   "Developed machine learning pipelines and data processing systems",
				Highlights: []string{
					"Built ML pipelines processing 1M+ records daily",
					"Implemented data processing systems with 99.9% uptime",
					"Integrated with 15+ external APIs",
					"Automated deployment with Docker and CI/CD",
				},
			},
		},
		Skills: []string{
			"Python", "Flask", "FastAPI", "Docker", "Qdrant", "PostgreSQL",
			"REST APIs", "Microservices", "Vector Search", "Machine Learning",
		},
		Projects: []types.Project{
			{
				Name:        "Resume Generator API",
				Description: "Built an AI-powered resume generation system using Flask, Qdrant, and LM Studio",
				Highlights: []string{
					"Flask API with vector search capabilities",
					"Qdrant database for semantic matching",
					"LM Studio integration for AI generation",
					"Docker containerization for easy deployment",
				},
				URL: "https://github.com/example/resume-generator",
			},
		},
	},
	{
		Basics: types.Basics{
			Name:    "Sarah Chen",
			Email:   "sarah.chen@example.com",
			Phone:   "+1-555-0456",
			Summary: "DevOps engineer specializing in AWS, Kubernetes, and CI/CD automation with 4+ years experience",
		},
		Work: []types.WorkEntry{
			{
				Company:   "CloudTech Solutions",
				Position:  "Senior DevOps Engineer",
				StartDate: "2022-03-01",
				EndDate:   "2024-12-31",
				Summary:   "Managed AWS infrastructure and Kubernetes clusters for high-traffic applications",
				Highlights: []string{
					"Managed AWS infrastructure serving 50M+ users",
					"Orchestrated Kubernetes clusters with 99.99% uptime",
					"Implemented CI/CD pipelines reducing deployment time by 80%",
					"Cost optimization saved company $100K annually",
				},
			},
			{
				Company:   "Digital Innovations",
				Position:  "DevOps Engineer",
				StartDate: "2020-01-01",
				EndDate:   "2022-02-28",
				Summary:   "Built automation tools and managed cloud infrastructure",
				Highlights: []string{
					"Automated infrastructure deployment with Terraform",
					"Implemented monitoring with Prometheus and Grafana",
					"Built CI/CD pipelines with Jenkins and GitLab",
					"Managed multi-region AWS deployments",
				},
			},
		},
		Skills: []string{
			"AWS", "Kubernetes", "Docker", "Terraform", "Jenkins", "GitLab CI",
			"Prometheus", "Grafana", "Python", "Bash", "Infrastructure as Code",
		},
		Projects: []types.Project{
			{
				Name:        "Kubernetes Monitoring Stack",
				Description: "Comprehensive monitoring solution for Kubernetes clusters with alerting and dashboards",
				Highlights: []string{
					"Prometheus and Grafana setup",
					"Custom metrics and alerting rules",
					"Multi-cluster monitoring",
					"Automated deployment with Helm",
				},
			},
		},
	},
	{
		Basics: types.Basics{
			Name:    "Mike Rodriguez",
			Email:   "mike.rodriguez@example.com",
			Phone:   "+1-555-0789",
			Summary: "Full-stack developer with expertise in React, Node.js, and database design, 6+ years building web applications",
		},
		Work: []types.WorkEntry{
			{
				Company:   "E-Commerce Giants",
				Position:  "Full-Stack Developer",
				StartDate: "2020-06-01",
				EndDate:   "2024-12-31",
				Summary:   "Developed e-commerce platform serving millions of customers with React and Node.js",
				Highlights: []string{
					"Built React frontend serving 2M+ daily users",
					"Developed Node.js APIs handling 100K+ transactions/day",
					"Optimized PostgreSQL queries for 50% faster page loads",
					"Implemented real-time features with WebSocket connections",
				},
			},
			{
				Company:   "WebDev Studio",
				Position:  "Frontend Developer",
				StartDate: "2018-01-01",
				EndDate:   "2020-05-31",
				Summary:   "Created responsive web applications and mobile-first user interfaces",
				Highlights: []string{
					"Built responsive React applications",
					"Implemented mobile-first design principles",
					"Integrated with RESTful APIs and GraphQL",
					"Performance optimization achieving 95+ Lighthouse scores",
				},
			},
		},
		Skills: []string{
			"React", "Node.js", "JavaScript", "TypeScript", "PostgreSQL", "MongoDB",
			"GraphQL", "REST APIs", "WebSocket", "HTML5", "CSS3", "Responsive Design",
		},
		Projects: []types.Project{
			{
				Name:        "Real-time Chat Application",
				Description: "Scalable chat application with React frontend and Node.js backend supporting 10K+ concurrent users",
				Highlights: []string{
					"React frontend with real-time updates",
					"Node.js backend with WebSocket support",
					"MongoDB for message persistence",
					"Horizontal scaling with Redis pub/sub",
				},
			},
		},
	},
	{
		Basics: types.Basics{
			Name:    "Dr. Lisa Wang",
			Email:   "lisa.wang@example.com",
			Phone:   "+1-555-0321",
			Summary: "Data scientist and ML engineer with PhD in Computer Science, specializing in NLP and deep learning",
		},
		Work: []types.WorkEntry{
			{
				Company:   "AI Research Lab",
				Position:  "Senior Data Scientist",
				StartDate: "2021-09-01",
				EndDate:   "2024-12-31",
				Summary:   "Led research and development of NLP models and recommendation systems",
				Highlights: []string{
					"Developed transformer models achieving 95% accuracy",
					"Built recommendation systems increasing engagement by 40%",
					"Published 8 papers in top-tier ML conferences",
					"Led team of 5 researchers on multimodal AI projects",
				},
			},
			{
				Company:   "Data Analytics Corp",
				Position:  "Data Scientist",
				StartDate: "2019-01-01",
				EndDate:   "2021-08-31",
				Summary:   "Built predictive models and analytics platforms for business intelligence",
				Highlights: []string{
					"Developed predictive models with 90%+ accuracy",
					"Built real-time analytics dashboards",
					"Implemented A/B testing frameworks",
					"Automated ML pipeline reducing model training time by 70%",
				},
			},
		},
		Skills: []string{
			"Python", "TensorFlow", "PyTorch", "scikit-learn", "Pandas", "NumPy",
			"NLP", "Deep Learning", "Computer Vision", "MLOps", "Docker", "Kubernetes",
		},
		Projects: []types.Project{
			{
				Name:        "Multi-modal AI Assistant",
				Description: "Advanced AI system processing text, images, and audio for intelligent task automation",
				Highlights: []string{
					"Transformer-based NLP models",
					"Computer vision with CNNs",
					"Audio processing with RNNs",
					"Multi-modal fusion techniques",
				},
			},
		},
	},
	{
		Basics: types.Basics{
			Name:    "Alex Thompson",
			Email:   "alex.thompson@example.com",
			Phone:   "+1-555-0654",
			Summary: "Security engineer with 5+ years experience in cybersecurity, penetration testing, and secure system design",
		},
		Work: []types.WorkEntry{
			{
				Company:   "CyberSec Solutions",
				Position:  "Senior Security Engineer",
				StartDate: "2022-01-01",
				EndDate:   "2024-12-31",
				Summary:   "Designed secure architectures and conducted security assessments for enterprise clients",
				Highlights: []string{
					"Conducted 50+ penetration tests identifying critical vulnerabilities",
					"Designed secure architectures for Fortune 500 companies",
					"Implemented zero-trust security frameworks",
					"Reduced security incidents by 85% through proactive measures",
				},
			},
			{
				Company:   "SecureTech Inc",
				Position:  "Security Analyst",
				StartDate: "2019-06-01",
				EndDate:   "2021-12-31",
				Summary:   "Monitored security threats and implemented incident response procedures",
				Highlights: []string{
					"Monitored 24/7 SOC operations",
					"Implemented SIEM solutions",
					"Developed incident response playbooks",
					"Conducted security awareness training for 500+ employees",
				},
			},
		},
		Skills: []string{
			"Penetration Testing", "Cybersecurity", "SIEM", "Zero Trust", "Python",
			"Network Security", "Incident Response", "Risk Assessment", "Compliance",
		},
		Projects: []types.Project{
			{
				Name:        "Enterprise Security Framework",
				Description: "Comprehensive security framework implementing zero-trust principles for large organizations",
				Highlights: []string{
					"Zero-trust architecture design",
					"Multi-factor authentication implementation",
					"Automated threat detection",
					"Compliance monitoring and reporting",
				},
			},
		},
	},
}
