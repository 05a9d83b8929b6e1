package services

import (
	"sort"
	"strings"

	"koi/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// FarmSearch tìm kiếm gần đúng trại koi theo tên, tỉnh và giống cá
type FarmSearch struct {
	farms      []models.Farm
	cmName     *closestmatch.ClosestMatch
	cmProvince *closestmatch.ClosestMatch
}

// scoredFarm kết quả kèm điểm để sắp xếp
type scoredFarm struct {
	farm  models.Farm
	score float64
}

func NewFarmSearch(farms []models.Farm) *FarmSearch {
	names := make([]string, 0, len(farms))
	provinces := make(map[string]bool)
	for _, f := range farms {
		names = append(names, normalizeInput(f.Name))
		if f.Province != "" {
			provinces[normalizeInput(f.Province)] = true
		}
	}

	provinceList := make([]string, 0, len(provinces))
	for p := range provinces {
		provinceList = append(provinceList, p)
	}

	return &FarmSearch{
		farms:      farms,
		cmName:     createMatcher(names),
		cmProvince: createMatcher(provinceList),
	}
}

// Tính điểm phù hợp cho một trại so với query
func (s *FarmSearch) scoreFarm(query string, farm models.Farm) float64 {
	score := 0.0

	name := normalizeInput(farm.Name)
	if strings.Contains(name, query) || strings.Contains(query, name) {
		score += 20
	}
	if s.cmName.Closest(query) == name {
		score += 13
	}
	score += 10 * calculateSimilarity(query, name)

	if farm.Province != "" {
		province := normalizeInput(farm.Province)
		if s.cmProvince.Closest(query) == province || strings.Contains(query, province) {
			score += 8
		}
	}

	for _, fish := range farm.Varieties {
		variety := normalizeInput(fish.Variety)
		if strings.Contains(query, variety) || calculateSimilarity(query, variety) > 0.7 {
			score += 4
			break
		}
	}

	return score
}

// Search trả về tối đa limit trại xếp theo độ phù hợp giảm dần
func (s *FarmSearch) Search(query string, limit int) []models.Farm {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return []models.Farm{}
	}

	scored := make([]scoredFarm, 0, len(s.farms))
	for _, farm := range s.farms {
		score := s.scoreFarm(normalizedQuery, farm)
		if score > 0 {
			scored = append(scored, scoredFarm{farm: farm, score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]models.Farm, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.farm)
	}
	return results
}
