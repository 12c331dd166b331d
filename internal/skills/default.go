package skills

// Domain tags shared between the vocabulary and the course catalog.
const (
	DomainDataScience     = "data-science"
	DomainMachineLearning = "machine-learning"
	DomainWebDevelopment  = "web-development"
	DomainMobile          = "mobile-development"
	DomainCloud           = "cloud-computing"
	DomainDevOps          = "devops"
	DomainDatabases       = "databases"
	DomainProgramming     = "programming"
	DomainSecurity        = "cybersecurity"
	DomainBusiness        = "business"
)

// Default returns the built-in reference vocabulary. The table is
// intentionally opinionated: canonical tags are already in normalized form
// and every entry carries at least one domain.
func Default() *Vocabulary {
	return New(defaultEntries)
}

var defaultEntries = []Entry{
	// Languages.
	{Canonical: "python", Domains: []string{DomainProgramming, DomainDataScience}},
	{Canonical: "java", Domains: []string{DomainProgramming}},
	{Canonical: "javascript", Aliases: []string{"js", "ecmascript"}, Domains: []string{DomainProgramming, DomainWebDevelopment}},
	{Canonical: "typescript", Aliases: []string{"ts"}, Domains: []string{DomainProgramming, DomainWebDevelopment}},
	{Canonical: "golang", Aliases: []string{"go"}, Domains: []string{DomainProgramming}},
	{Canonical: "c++", Aliases: []string{"cpp"}, Domains: []string{DomainProgramming}},
	{Canonical: "c#", Aliases: []string{"csharp"}, Domains: []string{DomainProgramming}},
	{Canonical: "ruby", Aliases: []string{"ruby on rails", "rails"}, Domains: []string{DomainProgramming, DomainWebDevelopment}},
	{Canonical: "php", Domains: []string{DomainProgramming, DomainWebDevelopment}},
	{Canonical: "scala", Domains: []string{DomainProgramming, DomainDataScience}},
	{Canonical: "kotlin", Domains: []string{DomainProgramming, DomainMobile}},
	{Canonical: "swift", Domains: []string{DomainProgramming, DomainMobile}},
	{Canonical: "r", Aliases: []string{"r programming", "r language"}, Domains: []string{DomainDataScience}},
	{Canonical: "rust", Domains: []string{DomainProgramming}},

	// Data science and machine learning.
	{Canonical: "machine learning", Aliases: []string{"ml"}, Domains: []string{DomainMachineLearning, DomainDataScience}},
	{Canonical: "deep learning", Domains: []string{DomainMachineLearning}},
	{Canonical: "data analysis", Aliases: []string{"data analytics"}, Domains: []string{DomainDataScience}},
	{Canonical: "data science", Domains: []string{DomainDataScience}},
	{Canonical: "data visualization", Domains: []string{DomainDataScience}},
	{Canonical: "statistics", Aliases: []string{"statistical analysis"}, Domains: []string{DomainDataScience}},
	{Canonical: "pandas", Domains: []string{DomainDataScience}},
	{Canonical: "numpy", Domains: []string{DomainDataScience}},
	{Canonical: "tensorflow", Domains: []string{DomainMachineLearning}},
	{Canonical: "pytorch", Domains: []string{DomainMachineLearning}},
	{Canonical: "scikit-learn", Aliases: []string{"sklearn", "scikit learn"}, Domains: []string{DomainMachineLearning}},
	{Canonical: "nlp", Aliases: []string{"natural language processing"}, Domains: []string{DomainMachineLearning}},
	{Canonical: "computer vision", Domains: []string{DomainMachineLearning}},
	{Canonical: "big data", Domains: []string{DomainDataScience}},
	{Canonical: "spark", Aliases: []string{"apache spark", "pyspark"}, Domains: []string{DomainDataScience}},
	{Canonical: "hadoop", Domains: []string{DomainDataScience}},
	{Canonical: "tableau", Domains: []string{DomainDataScience, DomainBusiness}},
	{Canonical: "power bi", Aliases: []string{"powerbi"}, Domains: []string{DomainDataScience, DomainBusiness}},

	// Web development.
	{Canonical: "react", Aliases: []string{"reactjs", "react.js"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "angular", Aliases: []string{"angularjs"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "vue", Aliases: []string{"vuejs", "vue.js"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "nodejs", Aliases: []string{"node.js", "node"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "express", Aliases: []string{"expressjs", "express.js"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "django", Domains: []string{DomainWebDevelopment}},
	{Canonical: "flask", Domains: []string{DomainWebDevelopment}},
	{Canonical: "html", Aliases: []string{"html5"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "css", Aliases: []string{"css3"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "rest api", Aliases: []string{"rest", "restful api"}, Domains: []string{DomainWebDevelopment}},
	{Canonical: "graphql", Domains: []string{DomainWebDevelopment}},

	// Mobile.
	{Canonical: "android", Domains: []string{DomainMobile}},
	{Canonical: "ios", Domains: []string{DomainMobile}},
	{Canonical: "flutter", Domains: []string{DomainMobile}},
	{Canonical: "react native", Domains: []string{DomainMobile}},

	// Databases.
	{Canonical: "sql", Domains: []string{DomainDatabases, DomainDataScience}},
	{Canonical: "mysql", Domains: []string{DomainDatabases}},
	{Canonical: "postgresql", Aliases: []string{"postgres"}, Domains: []string{DomainDatabases}},
	{Canonical: "mongodb", Aliases: []string{"mongo"}, Domains: []string{DomainDatabases}},
	{Canonical: "redis", Domains: []string{DomainDatabases}},
	{Canonical: "elasticsearch", Domains: []string{DomainDatabases}},
	{Canonical: "oracle", Domains: []string{DomainDatabases}},

	// Cloud and devops.
	{Canonical: "aws", Aliases: []string{"amazon web services"}, Domains: []string{DomainCloud}},
	{Canonical: "azure", Aliases: []string{"microsoft azure"}, Domains: []string{DomainCloud}},
	{Canonical: "gcp", Aliases: []string{"google cloud", "google cloud platform"}, Domains: []string{DomainCloud}},
	{Canonical: "docker", Domains: []string{DomainDevOps, DomainCloud}},
	{Canonical: "kubernetes", Aliases: []string{"k8s"}, Domains: []string{DomainDevOps, DomainCloud}},
	{Canonical: "terraform", Domains: []string{DomainDevOps, DomainCloud}},
	{Canonical: "ansible", Domains: []string{DomainDevOps}},
	{Canonical: "jenkins", Domains: []string{DomainDevOps}},
	{Canonical: "ci/cd", Aliases: []string{"cicd", "continuous integration"}, Domains: []string{DomainDevOps}},
	{Canonical: "linux", Domains: []string{DomainDevOps}},
	{Canonical: "git", Aliases: []string{"github", "gitlab"}, Domains: []string{DomainProgramming, DomainDevOps}},

	// Security.
	{Canonical: "penetration testing", Aliases: []string{"pentesting"}, Domains: []string{DomainSecurity}},
	{Canonical: "network security", Domains: []string{DomainSecurity}},
	{Canonical: "cryptography", Domains: []string{DomainSecurity}},
	{Canonical: "security", Aliases: []string{"cybersecurity", "information security"}, Domains: []string{DomainSecurity}},

	// Methodologies and business.
	{Canonical: "agile", Aliases: []string{"scrum", "kanban"}, Domains: []string{DomainBusiness}},
	{Canonical: "project management", Domains: []string{DomainBusiness}},
	{Canonical: "excel", Aliases: []string{"microsoft excel"}, Domains: []string{DomainBusiness, DomainDataScience}},
	{Canonical: "marketing", Aliases: []string{"digital marketing"}, Domains: []string{DomainBusiness}},
	{Canonical: "product management", Domains: []string{DomainBusiness}},
}
