// Package taxonomy holds the canonical skill set and the alias rules used to
// recognize skills in resumes and job descriptions.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// Taxonomy is an immutable set of canonical skills plus alias mappings.
// It is safe for concurrent use.
type Taxonomy struct {
	skills   []string          // canonical names, sorted
	aliases  map[string]string // alias as configured -> canonical
	phrases  map[string]string // token phrase -> canonical
	maxWords int
}

var current atomic.Pointer[Taxonomy]

func init() {
	t, err := New(builtinSkills, builtinAliases)
	if err != nil {
		panic(fmt.Sprintf("invalid builtin taxonomy: %v", err))
	}
	current.Store(t)
}

// Default returns the process-wide taxonomy.
func Default() *Taxonomy {
	return current.Load()
}

// SetDefault replaces the process-wide taxonomy and returns a function that
// restores the previous one. The old table is swapped out, never mutated.
func SetDefault(t *Taxonomy) (restore func()) {
	if t == nil {
		return func() {}
	}
	prev := current.Swap(t)
	return func() { current.Store(prev) }
}

// New builds a taxonomy from canonical skill names and an alias table whose
// values must name canonical skills.
func New(skills []string, aliases map[string]string) (*Taxonomy, error) {
	t := &Taxonomy{
		aliases: make(map[string]string, len(aliases)),
		phrases: make(map[string]string, len(skills)+len(aliases)),
	}

	canonical := make(map[string]bool, len(skills))
	for _, raw := range skills {
		name := strings.ToLower(strings.TrimSpace(raw))
		key := phraseKey(name)
		if key == "" {
			return nil, fmt.Errorf("skill %q has no word characters", raw)
		}
		if canonical[name] {
			continue
		}
		if existing, ok := t.phrases[key]; ok {
			return nil, fmt.Errorf("skill %q collides with %q", raw, existing)
		}
		canonical[name] = true
		t.skills = append(t.skills, name)
		t.addPhrase(key, name)
	}

	for alias, target := range aliases {
		name := strings.ToLower(strings.TrimSpace(target))
		if !canonical[name] {
			return nil, fmt.Errorf("alias %q points to unknown skill %q", alias, target)
		}
		key := phraseKey(alias)
		if key == "" {
			return nil, fmt.Errorf("alias %q has no word characters", alias)
		}
		if existing, ok := t.phrases[key]; ok && existing != name {
			return nil, fmt.Errorf("alias %q is ambiguous between %q and %q", alias, existing, name)
		}
		t.aliases[strings.ToLower(strings.TrimSpace(alias))] = name
		t.addPhrase(key, name)
	}

	sort.Strings(t.skills)
	return t, nil
}

func (t *Taxonomy) addPhrase(key, canonical string) {
	t.phrases[key] = canonical
	if n := strings.Count(key, " ") + 1; n > t.maxWords {
		t.maxWords = n
	}
}

// Extend returns a new taxonomy with extra skills and aliases layered on top
// of t. The receiver is left untouched.
func (t *Taxonomy) Extend(skills []string, aliases map[string]string) (*Taxonomy, error) {
	allSkills := append(t.Skills(), skills...)
	allAliases := t.Aliases()
	for alias, target := range aliases {
		allAliases[alias] = target
	}
	return New(allSkills, allAliases)
}

// Skills returns the canonical skill names in sorted order.
func (t *Taxonomy) Skills() []string {
	out := make([]string, len(t.skills))
	copy(out, t.skills)
	return out
}

// Aliases returns a copy of the alias table.
func (t *Taxonomy) Aliases() map[string]string {
	out := make(map[string]string, len(t.aliases))
	for k, v := range t.aliases {
		out[k] = v
	}
	return out
}

// Normalize maps a raw word or phrase to its canonical skill. Matching is
// case-insensitive, ignores surrounding punctuation and resolves aliases.
func (t *Taxonomy) Normalize(raw string) (string, bool) {
	key := phraseKey(raw)
	if key == "" {
		return "", false
	}
	canonical, ok := t.phrases[key]
	return canonical, ok
}

// Scan finds every known skill mentioned in text. Multi-word skills are
// matched as whole-token phrases, the longest phrase winning at each
// position. The result has no duplicates and is ordered by first appearance.
func (t *Taxonomy) Scan(text string) []string {
	tokens := Tokenize(text)
	seen := make(map[string]bool)
	found := make([]string, 0)

	for i := 0; i < len(tokens); i++ {
		for n := min(t.maxWords, len(tokens)-i); n >= 1; n-- {
			canonical, ok := t.phrases[strings.Join(tokens[i:i+n], " ")]
			if !ok {
				continue
			}
			if !seen[canonical] {
				seen[canonical] = true
				found = append(found, canonical)
			}
			i += n - 1
			break
		}
	}

	return found
}

// Contains reports whether name is a canonical skill.
func (t *Taxonomy) Contains(name string) bool {
	idx := sort.SearchStrings(t.skills, name)
	return idx < len(t.skills) && t.skills[idx] == name
}
