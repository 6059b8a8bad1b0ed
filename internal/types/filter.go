package types

import (
	"math"
	"net/url"
	"strconv"
)

// Pagination defaults applied when the caller omits or garbles page/limit.
const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// MaxOffset bounds (page-1)*limit so the offset fits every store's OFFSET.
const MaxOffset = math.MaxInt32

// FilterSpec is the normalized set of listing filters plus the page cursor.
// Empty strings, false and zero mean "no filter".
type FilterSpec struct {
	Page       int
	Limit      int
	Category   string
	Difficulty string
	Search     string
	Featured   bool
	// MaxTime bounds prep_time+cook_time in minutes.
	MaxTime int
}

// ParseFilterSpec builds a FilterSpec from query parameters. It never fails:
// malformed pagination falls back to the defaults.
func ParseFilterSpec(values url.Values) FilterSpec {
	f := FilterSpec{
		Page:       atoiOr(values.Get("page"), DefaultPage),
		Limit:      atoiOr(values.Get("limit"), DefaultLimit),
		Category:   values.Get("category"),
		Difficulty: values.Get("difficulty"),
		Search:     values.Get("search"),
		Featured:   values.Get("featured") == "true",
		MaxTime:    atoiOr(values.Get("max_time"), 0),
	}
	return f.Normalize()
}

// Normalize clamps pagination into range and drops a non-positive time bound.
// Limit is capped at MaxLimit and page at the last page whose offset stays
// within MaxOffset.
func (f FilterSpec) Normalize() FilterSpec {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if maxPage := MaxOffset/f.Limit + 1; f.Page > maxPage {
		f.Page = maxPage
	}
	if f.MaxTime < 0 {
		f.MaxTime = 0
	}
	return f
}

// Offset is the number of rows skipped before the current page.
func (f FilterSpec) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Values encodes the filters back into query parameters, omitting absent filters.
func (f FilterSpec) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Difficulty != "" {
		v.Set("difficulty", f.Difficulty)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Featured {
		v.Set("featured", "true")
	}
	if f.MaxTime > 0 {
		v.Set("max_time", strconv.Itoa(f.MaxTime))
	}
	return v
}

// TotalPages returns ceil(total/limit), or 0 when limit is not positive.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	pages := total / l
	if total%l != 0 {
		pages++
	}
	return int(pages)
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
