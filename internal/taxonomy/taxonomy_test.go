package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"lowercases", "Python SQL", []string{"python", "sql"}},
		{"keeps symbols", "C++, C# and Node.js.", []string{"c++", "c#", "and", "node.js"}},
		{"slash separates", "AWS/Azure", []string{"aws", "azure"}},
		{"hyphen separates", "scikit-learn", []string{"scikit", "learn"}},
		{"trims dots", "...python...", []string{"python"}},
		{"lone dot dropped", "a . b", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	tax := Default()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"Python", "python", true},
		{"  python,  ", "python", true},
		{"JS", "javascript", true},
		{"golang", "go", true},
		{"K8s", "kubernetes", true},
		{"Node.js", "nodejs", true},
		{"postgres", "postgresql", true},
		{"Power BI", "powerbi", true},
		{"CI/CD", "ci/cd", true},
		{"ci cd", "ci/cd", true},
		{"Machine Learning", "machine learning", true},
		{"scikit-learn", "scikit-learn", true},
		{"C++", "c++", true},
		{"C#", "c#", true},
		{"REST API", "restful", true},
		{"rest", "", false},
		{"ts", "", false},
		{"cobol", "", false},
		{"", "", false},
		{"!!!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := tax.Normalize(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_FindsSkillsInOrder(t *testing.T) {
	text := "Built services in Python and JS.\nApplied Machine\n   learning with SQL; later more Python."

	got := Default().Scan(text)

	assert.Equal(t, []string{"python", "javascript", "machine learning", "sql"}, got)
}

func TestScan_SymbolSkills(t *testing.T) {
	got := Default().Scan("Worked with C++, C# and Node.js on AWS/Azure using CI/CD")

	assert.Equal(t, []string{"c++", "c#", "nodejs", "aws", "azure", "ci/cd"}, got)
}

func TestScan_LongestPhraseWins(t *testing.T) {
	got := Default().Scan("Deployed to Google Cloud Platform and Amazon Web Services")

	assert.Equal(t, []string{"gcp", "aws"}, got)
}

func TestScan_AliasAndCanonicalDeduplicated(t *testing.T) {
	got := Default().Scan("JavaScript, JS, ECMAScript")

	assert.Equal(t, []string{"javascript"}, got)
}

func TestScan_WhitespaceInvariant(t *testing.T) {
	a := "Python, Docker and machine learning with PostgreSQL"
	b := "  Python,\n\n\tDocker   and machine\nlearning\r\nwith    PostgreSQL  "

	assert.Equal(t, Default().Scan(a), Default().Scan(b))
}

func TestScan_NoSkills(t *testing.T) {
	got := Default().Scan("We value kindness and curiosity.")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScan_CommonWordsAreNotSkills(t *testing.T) {
	text := "We need Python. You will excel in a team; the rest of the stack is up to you. TS/SCI clearance."

	got := Default().Scan(text)

	assert.NotContains(t, got, "restful")
	assert.NotContains(t, got, "typescript")
	assert.Contains(t, got, "python")
}

func TestScan_RestAPI(t *testing.T) {
	assert.Equal(t, []string{"restful"}, Default().Scan("Designed REST APIs"))
	assert.Equal(t, []string{"restful", "go"}, Default().Scan("RESTful services in Go"))
}

func TestScan_Idempotent(t *testing.T) {
	text := "Kubernetes, Terraform, Docker"
	tax := Default()

	assert.Equal(t, tax.Scan(text), tax.Scan(text))
}

func TestNew_RejectsUnknownAliasTarget(t *testing.T) {
	_, err := New([]string{"python"}, map[string]string{"py": "pythonic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown skill")
}

func TestNew_RejectsEmptySkill(t *testing.T) {
	_, err := New([]string{"python", "--"}, nil)
	require.Error(t, err)
}

func TestNew_SortedSkills(t *testing.T) {
	tax, err := New([]string{"Rust", "elixir", "python", "rust"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"elixir", "python", "rust"}, tax.Skills())
	assert.True(t, tax.Contains("elixir"))
	assert.False(t, tax.Contains("Elixir"))
}

func TestExtend_LeavesReceiverUntouched(t *testing.T) {
	base := Default()
	ext, err := base.Extend([]string{"elixir"}, map[string]string{"ex": "elixir"})
	require.NoError(t, err)

	got, ok := ext.Normalize("EX")
	assert.True(t, ok)
	assert.Equal(t, "elixir", got)

	_, ok = base.Normalize("elixir")
	assert.False(t, ok)

	// builtins survive the extension
	got, ok = ext.Normalize("js")
	assert.True(t, ok)
	assert.Equal(t, "javascript", got)
}

func TestSetDefault_Restore(t *testing.T) {
	original := Default()

	custom, err := New([]string{"elixir"}, nil)
	require.NoError(t, err)

	restore := SetDefault(custom)
	assert.Same(t, custom, Default())
	assert.Equal(t, []string{"elixir"}, Default().Scan("Elixir and Python"))

	restore()
	assert.Same(t, original, Default())
}

func TestSetDefault_NilIsNoop(t *testing.T) {
	original := Default()
	restore := SetDefault(nil)
	assert.Same(t, original, Default())
	restore()
	assert.Same(t, original, Default())
}

func TestAliases_ReturnsCopy(t *testing.T) {
	tax := Default()
	aliases := tax.Aliases()
	aliases["js"] = "python"

	got, _ := tax.Normalize("js")
	assert.Equal(t, "javascript", got)
}
