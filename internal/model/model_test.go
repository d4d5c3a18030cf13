package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAllocations(t *testing.T) {
	tests := []struct {
		name string
		in   []Selection
		want []int
	}{
		{
			"already 100 untouched",
			[]Selection{{ServiceID: "a", RevenuePercent: 60}, {ServiceID: "b", RevenuePercent: 40}},
			[]int{60, 40},
		},
		{
			"undersubscribed scales up",
			[]Selection{{ServiceID: "a", RevenuePercent: 30}, {ServiceID: "b", RevenuePercent: 30}},
			[]int{50, 50},
		},
		{
			"oversubscribed scales down",
			[]Selection{{ServiceID: "a", RevenuePercent: 100}, {ServiceID: "b", RevenuePercent: 100}},
			[]int{50, 50},
		},
		{
			"remainder goes to the last entry",
			[]Selection{{ServiceID: "a", RevenuePercent: 1}, {ServiceID: "b", RevenuePercent: 1}, {ServiceID: "c", RevenuePercent: 1}},
			[]int{33, 33, 34},
		},
		{
			"zero total left unchanged",
			[]Selection{{ServiceID: "a"}, {ServiceID: "b"}},
			[]int{0, 0},
		},
		{
			"single selection takes everything",
			[]Selection{{ServiceID: "a", RevenuePercent: 37}},
			[]int{100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAllocations(tt.in)
			var total int
			for i, sel := range got {
				assert.Equal(t, tt.want[i], sel.RevenuePercent)
				total += sel.RevenuePercent
			}
			if tt.want[0] != 0 {
				assert.Equal(t, 100, total)
			}
		})
	}
}

func TestNormalizeAllocationsDoesNotMutateInput(t *testing.T) {
	in := []Selection{{ServiceID: "a", RevenuePercent: 30}, {ServiceID: "b", RevenuePercent: 30}}
	_ = NormalizeAllocations(in)
	assert.Equal(t, 30, in[0].RevenuePercent)
	assert.Equal(t, 30, in[1].RevenuePercent)
}

func TestWeightMapMerge(t *testing.T) {
	base := WeightMap{DimensionOperational: 30, DimensionFinancial: 30, DimensionAI: 40}
	merged := base.Merge(WeightMap{DimensionAI: 50})

	assert.InDelta(t, 50, merged[DimensionAI], 0.001)
	assert.InDelta(t, 30, merged[DimensionOperational], 0.001)
	assert.InDelta(t, 40, base[DimensionAI], 0.001, "base must not change")

	assert.Equal(t, base, base.Merge(nil))
}

func TestWeightMapSum(t *testing.T) {
	assert.InDelta(t, 100, WeightMap{DimensionOperational: 30, DimensionFinancial: 30, DimensionAI: 40}.Sum(), 0.001)
	assert.Zero(t, WeightMap{}.Sum())
}

func TestScoreBundleSortedAccessors(t *testing.T) {
	b := ScoreBundle{
		Dimensions: map[DimensionID]int{DimensionOperational: 70, DimensionAI: 30, DimensionFinancial: 50},
		Services: map[string]ServiceScore{
			"seo":   {Score: 60},
			"email": {Score: 40},
		},
	}

	assert.Equal(t, []DimensionID{DimensionAI, DimensionFinancial, DimensionOperational}, b.SortedDimensions())
	assert.Equal(t, []string{"email", "seo"}, b.SortedServices())
}

func TestSubmissionSelectedServiceIDs(t *testing.T) {
	sub := Submission{Selections: []Selection{
		{ServiceID: "seo"}, {ServiceID: "content"},
	}}
	assert.Equal(t, []string{"seo", "content"}, sub.SelectedServiceIDs())
	assert.Empty(t, Submission{}.SelectedServiceIDs())
}
