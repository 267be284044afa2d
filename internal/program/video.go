package program

import "net/url"

const (
	watchURL  = "https://www.youtube.com/watch?v="
	searchURL = "https://www.youtube.com/results?search_query="
)

// Video references a demonstration for an exercise. ID is optional; without
// it the reference falls back to a search for Query.
type Video struct {
	Query string `json:"query"`
	Label string `json:"label"`
	ID    string `json:"id,omitempty"`
}

// Known reports whether a specific video is referenced.
func (v Video) Known() bool {
	return v.ID != ""
}

// URL returns the watch URL when the video is known, otherwise a search URL.
func (v Video) URL() string {
	if v.Known() {
		return watchURL + v.ID
	}

	return SearchURL(v.Query)
}

// SearchURL builds a video search link for q.
func SearchURL(q string) string {
	return searchURL + url.QueryEscape(q)
}

// Video returns the demonstration reference for an exercise, if any.
func (p *Program) Video(exerciseID string) (Video, bool) {
	v, ok := p.Videos[exerciseID]

	return v, ok
}
