// Package catalog defines the closed set of podcast shows the service
// tracks. Each show has its own episode table; the mapping from show to
// table name is a fixed switch so caller-supplied text never reaches a
// query fragment.
package catalog

import "fmt"

// Show identifies one of the tracked podcasts.
type Show string

const (
	ShowTMA     Show = "TMA"
	ShowBalloon Show = "Balloon"
	ShowTMShow  Show = "TMShow"
)

// displayNames maps the human-facing podcast names used by the web UI to
// their show identifiers.
var displayNames = map[string]Show{
	"TMA":                   ShowTMA,
	"The Morning After":     ShowTMA,
	"Balloon":               ShowBalloon,
	"Balloon Party":         ShowBalloon,
	"TMShow":                ShowTMShow,
	"The Tim McKernan Show": ShowTMShow,
}

// ParseShow resolves a show identifier or display name. Unknown names are a
// client error; resolution happens once at the boundary and handlers pass
// the typed Show inward.
func ParseShow(name string) (Show, error) {
	if show, ok := displayNames[name]; ok {
		return show, nil
	}
	return "", fmt.Errorf("unknown podcast %q", name)
}

// Table returns the episode table backing the show.
func (s Show) Table() string {
	switch s {
	case ShowTMA:
		return "TMA"
	case ShowBalloon:
		return "Balloon"
	case ShowTMShow:
		return "TMShow"
	}
	return ""
}

// Slug returns the path segment for the show's episode listing on the
// station site.
func (s Show) Slug() string {
	switch s {
	case ShowTMA:
		return "the-morning-after"
	case ShowBalloon:
		return "balloon-party"
	case ShowTMShow:
		return "the-tim-mckernan-show"
	}
	return ""
}

// Valid reports whether s is one of the known shows.
func (s Show) Valid() bool {
	return s.Table() != ""
}

// All returns every tracked show.
func All() []Show {
	return []Show{ShowTMA, ShowBalloon, ShowTMShow}
}
