package taxonomy

// builtinSkills is the canonical skill set shipped with the binary.
var builtinSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
	"ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "html", "css",

	// Frameworks & libraries
	"react", "angular", "vue", "nodejs", "express", "django", "flask", "fastapi",
	"spring", "laravel", "bootstrap", "tailwind",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite",
	"oracle", "cassandra", "dynamodb",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
	"git", "github", "gitlab", "ci/cd", "devops",

	// Data science & analytics
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
	"spark", "hadoop", "tableau", "powerbi", "excel",
	"machine learning", "data analysis", "data science",

	// Tools & practices
	"linux", "bash", "vim", "vscode", "intellij", "jira", "confluence",
	"slack", "postman", "figma", "photoshop",
	"agile", "scrum", "restful", "api", "microservices",
}

// builtinAliases maps common variants to canonical skills. Short aliases that
// are also everyday words ("rest", "ts") are left out.
var builtinAliases = map[string]string{
	"golang":                "go",
	"go lang":               "go",
	"js":                    "javascript",
	"ecmascript":            "javascript",
	"k8s":                   "kubernetes",
	"node.js":               "nodejs",
	"node js":               "nodejs",
	"react.js":              "react",
	"reactjs":               "react",
	"vue.js":                "vue",
	"vuejs":                 "vue",
	"angularjs":             "angular",
	"angular.js":            "angular",
	"express.js":            "express",
	"spring boot":           "spring",
	"postgres":              "postgresql",
	"mongo":                 "mongodb",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",
	"microsoft azure":       "azure",
	"power bi":              "powerbi",
	"ms excel":              "excel",
	"microsoft excel":       "excel",
	"sklearn":               "scikit-learn",
	"cicd":                  "ci/cd",
	"visual studio code":    "vscode",
	"vs code":               "vscode",
	"rest api":              "restful",
	"rest apis":             "restful",
	"apis":                  "api",
	"ml":                    "machine learning",
	"data analytics":        "data analysis",
	"apache spark":          "spark",
	"apache hadoop":         "hadoop",
}
