// Package search compiles user-supplied free-text queries into episode
// filters. A compiled filter carries both a pure in-memory predicate and an
// equivalent parameterized SQL fragment, so the same matching rules apply
// whether records are filtered in the store or in a slice.
package search

import (
	"strings"

	"gorm.io/gorm"

	"github.com/axe08/tmasearcher-api/internal/models"
	"github.com/axe08/tmasearcher-api/pkg/normalize"
)

// MatchMode selects how multiple keyword constraints combine.
type MatchMode string

const (
	// MatchAll requires every keyword to match (AND).
	MatchAll MatchMode = "all"
	// MatchAny requires at least one keyword to match (OR).
	MatchAny MatchMode = "any"
	// MatchExact uses each field's whole unsplit string as one substring.
	MatchExact MatchMode = "exact"
)

// ParseMatchMode maps a raw mode string to a MatchMode. Unrecognized values
// fall back to MatchAll.
func ParseMatchMode(s string) MatchMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MatchAny):
		return MatchAny
	case string(MatchExact):
		return MatchExact
	default:
		return MatchAll
	}
}

// Query is the raw search input from the serving layer.
type Query struct {
	Title   string
	Notes   string
	Date    string
	Mode    MatchMode
	Page    int
	PerPage int
}

type textField int

const (
	fieldTitle textField = iota
	fieldNotes
)

// expr is the stored-text comparison form: ASCII apostrophes rewritten to
// the typographic glyph the scraped titles use, then lowercased. The needle
// side gets the same folding in fold().
func (f textField) expr() string {
	switch f {
	case fieldTitle:
		return "LOWER(REPLACE(title, '''', '’'))"
	default:
		return "LOWER(REPLACE(show_notes, '''', '’'))"
	}
}

type textTerm struct {
	field  textField
	needle string
}

// Filter is a compiled search filter.
type Filter struct {
	terms       []textTerm
	disjunctive bool // MatchAny: one term hit is enough
	datePattern string
}

// fold prepares one side of a substring comparison: apostrophe-insensitive
// and case-insensitive.
func fold(s string) string {
	return strings.ToLower(normalize.Apostrophes(s))
}

// Compile turns a Query into a Filter. Empty fields contribute no
// constraints; a fully empty query compiles to a filter matching every
// record. The date clause is always conjunctive regardless of mode.
func Compile(q Query) *Filter {
	mode := ParseMatchMode(string(q.Mode))
	f := &Filter{disjunctive: mode == MatchAny}

	title := strings.TrimSpace(q.Title)
	notes := strings.TrimSpace(q.Notes)

	if mode == MatchExact {
		if title != "" {
			f.terms = append(f.terms, textTerm{fieldTitle, fold(title)})
		}
		if notes != "" {
			f.terms = append(f.terms, textTerm{fieldNotes, fold(notes)})
		}
	} else {
		for _, tok := range strings.Fields(title) {
			f.terms = append(f.terms, textTerm{fieldTitle, fold(tok)})
		}
		for _, tok := range strings.Fields(notes) {
			f.terms = append(f.terms, textTerm{fieldNotes, fold(tok)})
		}
	}

	if pattern, ok := ParseDatePattern(q.Date); ok {
		f.datePattern = pattern
	}

	return f
}

// Match reports whether the episode satisfies the filter. This is the pure
// predicate equivalent of Scope.
func (f *Filter) Match(ep models.Episode) bool {
	if len(f.terms) > 0 {
		title := fold(ep.Title)
		notes := fold(ep.ShowNotes)

		hit := false
		for _, t := range f.terms {
			hay := title
			if t.field == fieldNotes {
				hay = notes
			}
			if strings.Contains(hay, t.needle) {
				hit = true
				if f.disjunctive {
					break
				}
			} else if !f.disjunctive {
				return false
			}
		}
		if f.disjunctive && !hit {
			return false
		}
	}

	if f.datePattern != "" && !likeMatch(ep.Date, f.datePattern) {
		return false
	}

	return true
}

// Scope applies the filter to a gorm query as parameterized LIKE clauses.
// Column expressions come from a fixed switch; only values are bound.
func (f *Filter) Scope(tx *gorm.DB) *gorm.DB {
	if len(f.terms) > 0 {
		clauses := make([]string, 0, len(f.terms))
		args := make([]any, 0, len(f.terms))
		for _, t := range f.terms {
			clauses = append(clauses, t.field.expr()+" LIKE ?")
			args = append(args, "%"+t.needle+"%")
		}

		joiner := " AND "
		if f.disjunctive {
			joiner = " OR "
		}
		tx = tx.Where("("+strings.Join(clauses, joiner)+")", args...)
	}

	if f.datePattern != "" {
		tx = tx.Where("date LIKE ?", f.datePattern)
	}

	return tx
}

// likeMatch evaluates the small LIKE subset ParseDatePattern emits: a
// prefix pattern ("2023%") or a substring pattern ("%banana%").
func likeMatch(value, pattern string) bool {
	switch {
	case strings.HasPrefix(pattern, "%") && strings.HasSuffix(pattern, "%"):
		return strings.Contains(value, strings.Trim(pattern, "%"))
	case strings.HasSuffix(pattern, "%"):
		return strings.HasPrefix(value, strings.TrimSuffix(pattern, "%"))
	default:
		return value == pattern
	}
}
