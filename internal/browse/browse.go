// Package browse turns a page-view request into the next catalog query.
//
// It owns the offset/limit state machine behind the prev/next buttons and
// the choice between the filtered (name search) and unfiltered listing.
// Nothing here performs I/O.
package browse

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPageSize is used when no positive page size is configured.
const DefaultPageSize = 20

// Query parameters produced for the catalog.
const (
	ParamLimit          = "limit"
	ParamOffset         = "offset"
	ParamNameStartsWith = "nameStartsWith"
)

// Action is the navigation button pressed on the previous page.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
)

// ParseAction maps the raw button value. Only the exact values "next" and
// "prev" navigate; anything else is ActionNone.
func ParseAction(s string) Action {
	switch s {
	case "next":
		return ActionNext
	case "prev":
		return ActionPrev
	default:
		return ActionNone
	}
}

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	default:
		return "none"
	}
}

// ParseOffset parses a raw offset. Absent, malformed and negative values
// all resolve to 0.
func ParseOffset(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Input is a page-view request after parsing.
type Input struct {
	SearchTerm string
	Action     Action
	Offset     int
}

// ParseInput builds an Input from the raw charSearch, btnPressed and offset
// query values.
func ParseInput(search, button, offset string) Input {
	return Input{
		SearchTerm: strings.TrimSpace(search),
		Action:     ParseAction(button),
		Offset:     ParseOffset(offset),
	}
}

// State is the resolved window handed to the renderer.
type State struct {
	Offset     int
	PageSize   int
	SearchTerm string
}

// Step applies a navigation action. Prev never goes below zero and next
// saturates at math.MaxInt.
func (s State) Step(a Action) State {
	switch a {
	case ActionNext:
		if s.Offset > math.MaxInt-s.PageSize {
			s.Offset = math.MaxInt
			break
		}
		s.Offset += s.PageSize
	case ActionPrev:
		s.Offset = max(0, s.Offset-s.PageSize)
	}
	return s
}

// HasPrevious reports whether a previous page exists.
func (s State) HasPrevious() bool {
	return s.Offset > 0
}

// Plan is the query to issue plus the state to round-trip to the page.
type Plan struct {
	Params   url.Values
	State    State
	Filtered bool
}

// Resolve computes the next offset and the catalog parameters for in.
// A non-positive pageSize falls back to DefaultPageSize.
func Resolve(in Input, pageSize int) Plan {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := State{
		Offset:     max(0, in.Offset),
		PageSize:   pageSize,
		SearchTerm: strings.TrimSpace(in.SearchTerm),
	}
	next := start.Step(in.Action)

	params := url.Values{}
	params.Set(ParamLimit, strconv.Itoa(next.PageSize))
	params.Set(ParamOffset, strconv.Itoa(next.Offset))

	filtered := next.SearchTerm != ""
	if filtered {
		params.Set(ParamNameStartsWith, next.SearchTerm)
	}

	return Plan{
		Params:   params,
		State:    next,
		Filtered: filtered,
	}
}
