package taxonomy

import "strings"

// displayNames maps canonical skills whose display form is not a simple
// capitalization.
var displayNames = map[string]string{
	"javascript":       "JavaScript",
	"typescript":       "TypeScript",
	"c++":              "C++",
	"c#":               "C#",
	"php":              "PHP",
	"html":             "HTML",
	"css":              "CSS",
	"matlab":           "MATLAB",
	"nodejs":           "Node.js",
	"fastapi":          "FastAPI",
	"sql":              "SQL",
	"mysql":            "MySQL",
	"postgresql":       "PostgreSQL",
	"mongodb":          "MongoDB",
	"sqlite":           "SQLite",
	"dynamodb":         "DynamoDB",
	"aws":              "AWS",
	"gcp":              "GCP",
	"github":           "GitHub",
	"gitlab":           "GitLab",
	"ci/cd":            "CI/CD",
	"devops":           "DevOps",
	"numpy":            "NumPy",
	"pytorch":          "PyTorch",
	"tensorflow":       "TensorFlow",
	"powerbi":          "Power BI",
	"vscode":           "VS Code",
	"intellij":         "IntelliJ",
	"restful":          "RESTful",
	"api":              "API",
	"machine learning": "Machine Learning",
	"data analysis":    "Data Analysis",
	"data science":     "Data Science",
}

// DisplayName returns the human-readable form of a skill: known skills get
// their conventional spelling, aliases resolve first, single lowercase words
// are capitalized and anything else is returned trimmed.
func (t *Taxonomy) DisplayName(skill string) string {
	trimmed := strings.TrimSpace(skill)
	if trimmed == "" {
		return ""
	}

	canonical, ok := t.Normalize(trimmed)
	if !ok {
		return trimmed
	}
	if name, ok := displayNames[canonical]; ok {
		return name
	}
	if !strings.Contains(canonical, " ") {
		return strings.ToUpper(canonical[:1]) + canonical[1:]
	}
	return canonical
}
