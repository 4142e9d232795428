package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Taxonomy is the hierarchical dictionary of known skill names used for
// matching. It is loaded once at startup and never mutated afterwards, so
// it may be shared across concurrent requests without synchronization.
type Taxonomy struct {
	Technical        map[string][]string `json:"technical"`
	Soft             []string            `json:"soft"`
	IndustrySpecific map[string][]string `json:"industry_specific"`
}

// Load reads a taxonomy from the given JSON file. On any failure it falls
// back to the built-in default dictionary; the returned Taxonomy is always
// usable and the error is informational only.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTaxonomy(), fmt.Errorf("reading skills taxonomy %s: %w", path, err)
	}
	var tax Taxonomy
	if err := json.Unmarshal(data, &tax); err != nil {
		return DefaultTaxonomy(), fmt.Errorf("parsing skills taxonomy %s: %w", path, err)
	}
	if len(tax.Technical) == 0 && len(tax.Soft) == 0 && len(tax.IndustrySpecific) == 0 {
		return DefaultTaxonomy(), fmt.Errorf("skills taxonomy %s is empty", path)
	}
	return &tax, nil
}

// TechnicalCategories returns the technical category names in sorted order
// so that matching is deterministic across runs.
func (t *Taxonomy) TechnicalCategories() []string {
	keys := make([]string, 0, len(t.Technical))
	for k := range t.Technical {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Industries returns the industry names in sorted order.
func (t *Taxonomy) Industries() []string {
	keys := make([]string, 0, len(t.IndustrySpecific))
	for k := range t.IndustrySpecific {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultTaxonomy returns the built-in skills dictionary used when no
// external taxonomy file is available.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Technical: map[string][]string{
			"programming_languages": {
				"Python", "Java", "JavaScript", "C++", "C#", "PHP", "Ruby", "Swift", "Kotlin", "Go",
				"TypeScript", "R", "MATLAB", "Perl", "Scala", "Rust", "Dart", "Objective-C", "Bash",
				"PowerShell", "SQL", "HTML", "CSS", "XML", "JSON", "YAML", "Assembly",
			},
			"frameworks_libraries": {
				"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "ASP.NET", "Laravel",
				"Express.js", "Ruby on Rails", "TensorFlow", "PyTorch", "Keras", "Scikit-learn",
				"Pandas", "NumPy", "jQuery", "Bootstrap", "Tailwind CSS", "Node.js", "Redux",
				"Next.js", "Gatsby", "FastAPI", "Symfony", "Hibernate", "Mongoose", "Unity",
			},
			"databases": {
				"MySQL", "PostgreSQL", "SQLite", "Oracle", "Microsoft SQL Server", "MongoDB",
				"Redis", "Cassandra", "DynamoDB", "Elasticsearch", "Firebase", "Neo4j", "MariaDB",
				"CouchDB", "Firestore",
			},
			"cloud_services": {
				"AWS", "Azure", "Google Cloud", "Heroku", "DigitalOcean", "IBM Cloud", "Oracle Cloud",
				"Alibaba Cloud", "Linode", "Vultr", "EC2", "S3", "Lambda", "DynamoDB", "RDS",
				"CloudFront", "IAM", "Azure Functions", "App Engine", "GKE", "Azure DevOps",
			},
			"tools": {
				"Git", "Docker", "Kubernetes", "Jenkins", "Travis CI", "CircleCI", "GitHub Actions",
				"Terraform", "Ansible", "Puppet", "Chef", "Vagrant", "JIRA", "Confluence", "Trello",
				"Slack", "VS Code", "IntelliJ IDEA", "Eclipse", "Xcode", "Android Studio", "PyCharm",
				"Postman", "Insomnia", "Figma", "Sketch", "Adobe XD",
			},
			"methodologies": {
				"Agile", "Scrum", "Kanban", "Waterfall", "DevOps", "CI/CD", "TDD", "BDD", "XP",
				"Lean", "Six Sigma", "ITIL", "SAFe", "LeSS", "Design Thinking", "Microservices",
				"Serverless", "RESTful", "SOA",
			},
		},
		Soft: []string{
			"Communication", "Leadership", "Teamwork", "Problem Solving", "Critical Thinking",
			"Adaptability", "Time Management", "Creativity", "Emotional Intelligence", "Negotiation",
			"Conflict Resolution", "Decision Making", "Empathy", "Active Listening", "Public Speaking",
			"Written Communication", "Collaboration", "Organization", "Project Management", "Attention to Detail",
			"Strategic Thinking", "Analytical Skills", "Customer Service", "Interpersonal Skills", "Flexibility",
		},
		IndustrySpecific: map[string][]string{
			"finance": {
				"Financial Analysis", "Accounting", "Financial Reporting", "Budgeting", "Forecasting",
				"Risk Management", "Investment Banking", "Financial Modeling", "Valuation",
				"Portfolio Management", "Financial Planning", "Auditing", "Tax Preparation",
				"Mergers & Acquisitions", "Compliance", "Banking", "Insurance", "Equity Research",
			},
			"healthcare": {
				"Patient Care", "Electronic Health Records (EHR)", "Medical Terminology", "Healthcare Compliance",
				"Clinical Research", "Medical Coding", "HIPAA", "Telemedicine", "Medical Billing",
				"Healthcare Administration", "Pharmacy", "Nursing", "Medical Devices", "Biotechnology",
			},
			"marketing": {
				"Digital Marketing", "SEO", "SEM", "Social Media Marketing", "Content Marketing",
				"Email Marketing", "Market Research", "Brand Management", "Marketing Strategy",
				"Google Analytics", "CRM", "Growth Hacking", "Affiliate Marketing", "A/B Testing",
				"User Acquisition", "Conversion Rate Optimization", "Google Ads", "Facebook Ads",
			},
			"data_science": {
				"Machine Learning", "Deep Learning", "Data Analysis", "Data Visualization", "Big Data",
				"Statistical Analysis", "Data Mining", "Natural Language Processing", "Computer Vision",
				"Predictive Modeling", "Feature Engineering", "Data Cleaning", "ETL", "BI Tools",
				"A/B Testing", "Hypothesis Testing", "Regression Analysis", "Clustering",
			},
		},
	}
}
