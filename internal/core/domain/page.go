package domain

import "image"

// PageStatus classifies the outcome of one page-pair comparison.
type PageStatus string

// Possible page-pair outcomes.
const (
	// StatusMatch means zero pixels exceeded the threshold.
	StatusMatch PageStatus = "match"

	// StatusMismatch means at least one pixel exceeded the threshold.
	StatusMismatch PageStatus = "mismatch"

	// StatusMissing means the page exists in only one of the documents.
	StatusMissing PageStatus = "missing"
)

// IsValid returns true if the status is recognised.
func (s PageStatus) IsValid() bool {
	switch s {
	case StatusMatch, StatusMismatch, StatusMissing:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s PageStatus) String() string {
	return string(s)
}

// PageResult records the outcome of comparing the two pages at one
// ordinal position across the compared documents.
type PageResult struct {
	// Page is the 1-based page number.
	Page int

	// Status is the comparison outcome for this page pair.
	Status PageStatus

	// Mismatch is the number of pixels exceeding the threshold.
	// Zero for match and missing pages.
	Mismatch int

	// Artifact is the path of the saved diff image.
	// Empty for match pages, which produce no artifact.
	Artifact string

	// Resized is true when the two pages had different pixel dimensions
	// and the second was resized to the first's before comparison.
	Resized bool

	// SizeA and SizeB hold the original pixel dimensions of each side.
	// Only recorded when Resized is true; zero otherwise.
	SizeA image.Point
	SizeB image.Point
}

// Report accumulates per-page results into the overall verdict for one
// comparison run.
type Report struct {
	// PagesA and PagesB are the page counts of the two documents.
	PagesA int
	PagesB int

	// Results holds one entry per page position, in page order.
	// Its length is always max(PagesA, PagesB).
	Results []PageResult
}

// Differs reports the overall verdict: true if the page counts differ
// or any page pair is a mismatch or missing.
func (r *Report) Differs() bool {
	if r.PagesA != r.PagesB {
		return true
	}
	for i := range r.Results {
		if r.Results[i].Status != StatusMatch {
			return true
		}
	}
	return false
}

// Artifacts returns the paths of all saved diff images, in page order.
func (r *Report) Artifacts() []string {
	var paths []string
	for i := range r.Results {
		if r.Results[i].Artifact != "" {
			paths = append(paths, r.Results[i].Artifact)
		}
	}
	return paths
}
