package dataprocessing

import (
	"cafecast/pkg/contracts/domain"
)

// DefaultHighSellers is the base list of menu items modeled in the
// high-seller cohort regardless of observed revenue.
func DefaultHighSellers() []string {
	return []string{"Latte", "Americano", "Espresso", "Cappuccino", "Mocha"}
}

// Segmenter partitions menu items into the high and low seller cohorts.
// The effective high-seller set is the base list plus the single item
// with the highest total revenue in the current dataset.
type Segmenter struct {
	highSellers map[string]struct{}
}

// NewSegmenter builds a segmenter from the base high-seller list and the
// dataset's top-revenue item.
func NewSegmenter(base []string, topRevenueItem string) *Segmenter {
	set := make(map[string]struct{}, len(base)+1)
	for _, item := range base {
		set[item] = struct{}{}
	}
	if topRevenueItem != "" {
		set[topRevenueItem] = struct{}{}
	}
	return &Segmenter{highSellers: set}
}

// GroupFor returns the cohort for a menu item.
func (s *Segmenter) GroupFor(item string) domain.MenuGroup {
	if _, ok := s.highSellers[item]; ok {
		return domain.GroupHighSellers
	}
	return domain.GroupLowSellers
}

// AssignGroups returns a copy of the feature table with every record's
// menu group label set.
func (s *Segmenter) AssignGroups(features []domain.FeatureRecord) []domain.FeatureRecord {
	labeled := make([]domain.FeatureRecord, len(features))
	for i, f := range features {
		f.Group = s.GroupFor(f.ItemName)
		labeled[i] = f
	}
	return labeled
}

// SplitByGroup partitions a labeled feature table per cohort, preserving
// row order within each cohort.
func SplitByGroup(features []domain.FeatureRecord) map[domain.MenuGroup][]domain.FeatureRecord {
	segments := make(map[domain.MenuGroup][]domain.FeatureRecord)
	for _, f := range features {
		segments[f.Group] = append(segments[f.Group], f)
	}
	return segments
}

// TopRevenueItem returns the item with the highest summed money across
// the raw table, with a lexicographic tie-break for determinism. Returns
// "" for an empty table.
func TopRevenueItem(transactions []domain.RawTransaction) string {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		totals[tx.ItemName] += tx.Money
	}

	best := ""
	bestTotal := 0.0
	for item, total := range totals {
		if best == "" || total > bestTotal || (total == bestTotal && item < best) {
			best = item
			bestTotal = total
		}
	}
	return best
}
