package reconcile

// RssEntry is one feed item as handed over by the RSS fetcher. Entries are
// ephemeral: fetched fresh each run, matched, and discarded — never stored.
type RssEntry struct {
	Title     string // raw feed title
	Published string // RFC-822 date-time text as published by the feed
	AudioURL  string // enclosure URL, may be empty
}
