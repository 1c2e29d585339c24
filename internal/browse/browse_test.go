package browse

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		raw  string
		want Action
	}{
		{"next", ActionNext},
		{"prev", ActionPrev},
		{"", ActionNone},
		{"Next", ActionNone},
		{"previous", ActionNone},
		{" next", ActionNone},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseAction(tc.raw), "raw %q", tc.raw)
	}
	assert.Equal(t, "next", ActionNext.String())
	assert.Equal(t, "prev", ActionPrev.String())
	assert.Equal(t, "none", ActionNone.String())
}

func TestParseOffset(t *testing.T) {
	testCases := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"40", 40},
		{" 60 ", 60},
		{"7", 7},
		{"abc", 0},
		{"12abc", 0},
		{"-20", 0},
		{"1.5", 0},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseOffset(tc.raw), "raw %q", tc.raw)
	}
}

func TestResolveNavigation(t *testing.T) {
	t.Run("next five times from zero", func(t *testing.T) {
		offset := 0
		var got []int
		for i := 0; i < 5; i++ {
			plan := Resolve(Input{Action: ActionNext, Offset: offset}, 20)
			offset = plan.State.Offset
			got = append(got, offset)
		}
		assert.Equal(t, []int{20, 40, 60, 80, 100}, got)
	})

	t.Run("prev from 20 yields 0", func(t *testing.T) {
		assert.Equal(t, 0, Resolve(Input{Action: ActionPrev, Offset: 20}, 20).State.Offset)
	})

	t.Run("prev from 0 is clamped", func(t *testing.T) {
		assert.Equal(t, 0, Resolve(Input{Action: ActionPrev, Offset: 0}, 20).State.Offset)
	})

	t.Run("prev from an off-grid offset is clamped", func(t *testing.T) {
		assert.Equal(t, 0, Resolve(Input{Action: ActionPrev, Offset: 7}, 20).State.Offset)
	})

	t.Run("none keeps the offset", func(t *testing.T) {
		assert.Equal(t, 33, Resolve(Input{Action: ActionNone, Offset: 33}, 20).State.Offset)
	})

	t.Run("negative offset is clamped", func(t *testing.T) {
		assert.Equal(t, 0, Resolve(Input{Offset: -40}, 20).State.Offset)
	})

	t.Run("next near the int limit saturates", func(t *testing.T) {
		plan := Resolve(ParseInput("", "next", "9223372036854775800"), 20)
		assert.GreaterOrEqual(t, plan.State.Offset, 0)

		offset, err := strconv.Atoi(plan.Params.Get(ParamOffset))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, offset, 0)
		assert.Equal(t, plan.State.Offset, offset)

		s := State{Offset: math.MaxInt - 5, PageSize: 20}.Step(ActionNext)
		assert.Equal(t, math.MaxInt, s.Offset)
		assert.Equal(t, math.MaxInt-20, s.Step(ActionPrev).Offset)
	})

	t.Run("page size falls back to default", func(t *testing.T) {
		plan := Resolve(Input{Action: ActionNext}, 0)
		assert.Equal(t, DefaultPageSize, plan.State.PageSize)
		assert.Equal(t, DefaultPageSize, plan.State.Offset)
	})
}

func TestResolveQuerySelection(t *testing.T) {
	t.Run("search term routes to filtered query", func(t *testing.T) {
		plan := Resolve(Input{SearchTerm: "Spider", Action: ActionNext, Offset: 0}, 20)
		assert.True(t, plan.Filtered)
		assert.Equal(t, "Spider", plan.Params.Get(ParamNameStartsWith))
		assert.Equal(t, "20", plan.Params.Get(ParamLimit))
		assert.Equal(t, "20", plan.Params.Get(ParamOffset))
		assert.Equal(t, "Spider", plan.State.SearchTerm)
	})

	for _, term := range []string{"", "   "} {
		t.Run("empty term routes to list query", func(t *testing.T) {
			plan := Resolve(Input{SearchTerm: term, Action: ActionNext, Offset: 0}, 20)
			assert.False(t, plan.Filtered)
			assert.NotContains(t, plan.Params, ParamNameStartsWith)
			assert.Equal(t, "20", plan.Params.Get(ParamLimit))
			assert.Equal(t, "20", plan.Params.Get(ParamOffset))
			assert.Equal(t, "", plan.State.SearchTerm)
		})
	}

	t.Run("both variants share limit and offset", func(t *testing.T) {
		filtered := Resolve(Input{SearchTerm: "Hulk", Offset: 40}, 25)
		listed := Resolve(Input{Offset: 40}, 25)
		assert.Equal(t, filtered.Params.Get(ParamLimit), listed.Params.Get(ParamLimit))
		assert.Equal(t, filtered.Params.Get(ParamOffset), listed.Params.Get(ParamOffset))
	})
}

func TestParseInput(t *testing.T) {
	in := ParseInput("  Thor ", "prev", "not-a-number")
	assert.Equal(t, Input{SearchTerm: "Thor", Action: ActionPrev, Offset: 0}, in)

	plan := Resolve(ParseInput("", "next", "0"), 20)
	assert.Equal(t, 20, plan.State.Offset)
	assert.True(t, plan.State.HasPrevious())
	assert.False(t, Resolve(ParseInput("", "", ""), 20).State.HasPrevious())
}
