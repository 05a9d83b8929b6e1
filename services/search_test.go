package services

import (
	"testing"

	"koi/models"

	"github.com/stretchr/testify/assert"
)

func sampleFarms() []models.Farm {
	return []models.Farm{
		{ID: 1, Name: "Dainichi Koi Farm", Province: "Niigata", Varieties: []models.Fish{{Variety: "Kohaku"}, {Variety: "Showa"}}},
		{ID: 2, Name: "Sakai Fish Farm", Province: "Hiroshima", Varieties: []models.Fish{{Variety: "Sanke"}}},
		{ID: 3, Name: "Momotaro Koi Farm", Province: "Okayama", Varieties: []models.Fish{{Variety: "Kohaku"}}},
	}
}

func TestFarmSearchExactName(t *testing.T) {
	search := NewFarmSearch(sampleFarms())

	results := search.Search("Dainichi Koi Farm", 10)

	assert.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].ID)
}

func TestFarmSearchTypo(t *testing.T) {
	search := NewFarmSearch(sampleFarms())

	// Gõ sai một chữ vẫn phải tìm ra
	results := search.Search("Sakay fish farm", 10)

	assert.NotEmpty(t, results)
	assert.Equal(t, uint(2), results[0].ID)
}

func TestFarmSearchDiacritics(t *testing.T) {
	search := NewFarmSearch(sampleFarms())

	// Tiếng Việt có dấu được chuẩn hóa trước khi so
	withDiacritics := search.Search("Đainichi", 10)
	plain := search.Search("Dainichi", 10)

	assert.NotEmpty(t, withDiacritics)
	assert.NotEmpty(t, plain)
	assert.Equal(t, plain[0].ID, withDiacritics[0].ID)
}

func TestFarmSearchLimit(t *testing.T) {
	search := NewFarmSearch(sampleFarms())

	results := search.Search("koi farm", 1)

	assert.LessOrEqual(t, len(results), 1)
}

func TestFarmSearchEmptyQuery(t *testing.T) {
	search := NewFarmSearch(sampleFarms())

	assert.Empty(t, search.Search("", 10))
	assert.Empty(t, search.Search("   ", 10))
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "trai ca koi", normalizeInput("  Trại Cá Koi "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("kohaku", "kohaku"))
	assert.InDelta(t, 0.833, calculateSimilarity("kohaku", "kohako"), 0.01)
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
}
