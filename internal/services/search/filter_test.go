package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/axe08/tmasearcher-api/internal/models"
)

func ep(title, date, notes string) models.Episode {
	return models.Episode{Title: title, Date: date, ShowNotes: notes}
}

func TestParseMatchMode(t *testing.T) {
	assert.Equal(t, MatchAll, ParseMatchMode("all"))
	assert.Equal(t, MatchAny, ParseMatchMode("any"))
	assert.Equal(t, MatchExact, ParseMatchMode("exact"))
	assert.Equal(t, MatchAny, ParseMatchMode(" ANY "))

	// Unrecognized modes default to all.
	assert.Equal(t, MatchAll, ParseMatchMode(""))
	assert.Equal(t, MatchAll, ParseMatchMode("fuzzy"))
}

func TestCompile_MatchAll(t *testing.T) {
	f := Compile(Query{Title: "morning show", Mode: MatchAll})

	assert.True(t, f.Match(ep("The Morning Show Recap", "2023-01-01", "")))
	assert.True(t, f.Match(ep("Show of the MORNING", "2023-01-01", "")))
	assert.False(t, f.Match(ep("The Morning After", "2023-01-01", ""))) // missing "show"
	assert.False(t, f.Match(ep("Some Show", "2023-01-01", "")))        // missing "morning"
}

func TestCompile_MatchAny(t *testing.T) {
	f := Compile(Query{Title: "morning show", Mode: MatchAny})

	assert.True(t, f.Match(ep("The Morning After", "2023-01-01", "")))
	assert.True(t, f.Match(ep("Some Show", "2023-01-01", "")))
	assert.False(t, f.Match(ep("Balloon Party Hour 2", "2023-01-01", "")))
}

func TestCompile_MatchAny_TheExample(t *testing.T) {
	f := Compile(Query{Title: "the", Mode: MatchAny})

	assert.True(t, f.Match(ep("The Big One", "2023-01-01", "")))
	assert.False(t, f.Match(ep("Small Item", "2023-01-01", "")))
}

func TestCompile_MatchExact(t *testing.T) {
	// The whole unsplit string must appear as one substring.
	f := Compile(Query{Title: "morning show", Mode: MatchExact})

	assert.True(t, f.Match(ep("Good Morning Show Recap", "2023-01-01", "")))
	assert.False(t, f.Match(ep("Morning Radio Show", "2023-01-01", "")))
}

func TestCompile_ExactBothFieldsAnded(t *testing.T) {
	f := Compile(Query{Title: "hour 1", Notes: "cardinals", Mode: MatchExact})

	assert.True(t, f.Match(ep("Hour 1: Opening", "2023-01-01", "Cardinals talk")))
	assert.False(t, f.Match(ep("Hour 1: Opening", "2023-01-01", "Blues talk")))
	assert.False(t, f.Match(ep("Hour 2: Closing", "2023-01-01", "Cardinals talk")))
}

func TestCompile_NotesKeywords(t *testing.T) {
	f := Compile(Query{Notes: "cardinals blues", Mode: MatchAll})

	assert.True(t, f.Match(ep("Any Title", "2023-01-01", "Cardinals and Blues recap")))
	assert.False(t, f.Match(ep("Any Title", "2023-01-01", "Cardinals recap")))
}

func TestCompile_ApostropheInsensitive(t *testing.T) {
	// Stored titles carry typographic apostrophes; input is usually ASCII.
	f := Compile(Query{Title: "tim's", Mode: MatchAll})
	assert.True(t, f.Match(ep("Tim’s Big Show", "2023-01-01", "")))

	f = Compile(Query{Title: "tim’s", Mode: MatchAll})
	assert.True(t, f.Match(ep("Tim’s Big Show", "2023-01-01", "")))
}

func TestCompile_DateAlwaysConjunctive(t *testing.T) {
	// In any-mode a text hit alone is not enough: the date clause still
	// has to hold.
	f := Compile(Query{Title: "morning", Date: "2023", Mode: MatchAny})

	assert.True(t, f.Match(ep("Morning Recap", "2023-05-10", "")))
	assert.False(t, f.Match(ep("Morning Recap", "2022-05-10", "")))
}

func TestCompile_DateOnly(t *testing.T) {
	f := Compile(Query{Date: "5/2023"})

	assert.True(t, f.Match(ep("Anything", "2023-05-10", "")))
	assert.False(t, f.Match(ep("Anything", "2023-06-10", "")))
}

func TestCompile_EmptyQueryMatchesEverything(t *testing.T) {
	f := Compile(Query{})

	assert.True(t, f.Match(ep("Anything", "2023-05-10", "notes")))
	assert.True(t, f.Match(ep("", "", "")))
}

func TestCompile_ExactEmptyFieldsNoConstraint(t *testing.T) {
	// exact mode with blank fields still matches everything.
	f := Compile(Query{Mode: MatchExact})
	assert.True(t, f.Match(ep("Anything", "2023-05-10", "")))
}

func TestLikeMatch(t *testing.T) {
	assert.True(t, likeMatch("2023-05-10", "2023%"))
	assert.False(t, likeMatch("2022-05-10", "2023%"))
	assert.True(t, likeMatch("2023-05-10", "%05%"))
	assert.False(t, likeMatch("2023-06-10", "%banana%"))
}
