package services

import (
	"fmt"
	"slices"
	"sort"

	"symtrack/internal/models"

	"gorm.io/gorm"
)

type PatternService struct {
	db *gorm.DB
}

func NewPatternService(db *gorm.DB) *PatternService {
	return &PatternService{db: db}
}

// Pattern is a canonical (sorted, deduplicated) set of symptom labels
// observed together for one user, with the number of users sharing it.
type Pattern struct {
	Symptoms []string `json:"symptoms"`
	Count    int      `json:"count"`
}

// MostCommonPatterns scans every user's symptom set and returns the most
// frequent co-occurring label combinations, at most limit entries.
//
// A user's labels are deduplicated and sorted, so the tuple is canonical.
// Users with fewer than two distinct labels contribute no observation. Ties
// in frequency are broken by lexicographic tuple order, which makes the
// result deterministic across runs.
func (s *PatternService) MostCommonPatterns(limit int) ([]Pattern, error) {
	var symptoms []models.Symptom
	if err := s.db.Select("user_id", "label").Find(&symptoms).Error; err != nil {
		return nil, err
	}

	labelsByUser := make(map[uint]map[string]struct{})
	for _, sym := range symptoms {
		set, ok := labelsByUser[sym.UserID]
		if !ok {
			set = make(map[string]struct{})
			labelsByUser[sym.UserID] = set
		}
		set[sym.Label] = struct{}{}
	}

	// Tuples are kept as label slices; the map key quotes each label so
	// distinct tuples can never collide, whatever characters labels contain.
	counts := make(map[string]*Pattern)
	for _, set := range labelsByUser {
		if len(set) < 2 {
			continue
		}
		labels := make([]string, 0, len(set))
		for label := range set {
			labels = append(labels, label)
		}
		sort.Strings(labels)

		key := fmt.Sprintf("%q", labels)
		if p, ok := counts[key]; ok {
			p.Count++
		} else {
			counts[key] = &Pattern{Symptoms: labels, Count: 1}
		}
	}

	patterns := make([]Pattern, 0, len(counts))
	for _, p := range counts {
		patterns = append(patterns, *p)
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return slices.Compare(patterns[i].Symptoms, patterns[j].Symptoms) < 0
	})

	if len(patterns) > limit {
		patterns = patterns[:limit]
	}
	return patterns, nil
}
