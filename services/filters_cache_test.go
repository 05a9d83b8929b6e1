package services

import (
	"testing"

	"koi/dto"

	"github.com/stretchr/testify/assert"
)

func TestMergeFiltersKeepsPreviousFields(t *testing.T) {
	old := &dto.FarmSearchFilters{Query: "dainichi", Province: "niigata"}
	next := &dto.FarmSearchFilters{Variety: "kohaku"}

	merged := MergeFilters(old, next)

	assert.Equal(t, "dainichi", merged.Query)
	assert.Equal(t, "niigata", merged.Province)
	assert.Equal(t, "kohaku", merged.Variety)
}

func TestMergeFiltersNewValueWins(t *testing.T) {
	old := &dto.FarmSearchFilters{Query: "dainichi", Province: "niigata"}
	next := &dto.FarmSearchFilters{Query: "sakai"}

	merged := MergeFilters(old, next)

	assert.Equal(t, "sakai", merged.Query)
	assert.Equal(t, "niigata", merged.Province)
}
