package models

import (
	"sort"
)

// CountryRecord is the part of a country entry the application reads.
// Every other field of the upstream payload is ignored.
type CountryRecord struct {
	Region     string `json:"region"`
	Population int64  `json:"population"`
}

// ContinentTotals maps a continent name to the summed population of its countries
type ContinentTotals map[string]int64

// ContinentBar is one (label, value) pair of the visible chart series
type ContinentBar struct {
	Label      string
	Population int64
}

// Aggregate sums population per region. Records with an empty region are skipped.
func Aggregate(records []CountryRecord) ContinentTotals {
	totals := make(ContinentTotals)
	for _, record := range records {
		if record.Region == "" {
			continue
		}
		totals[record.Region] += record.Population
	}
	return totals
}

// CountUnassigned returns how many records Aggregate skips
func CountUnassigned(records []CountryRecord) int {
	count := 0
	for _, record := range records {
		if record.Region == "" {
			count++
		}
	}
	return count
}

// Filter returns the continents whose total is at least threshold, ordered by name.
// Labels and values stay paired.
func (ct ContinentTotals) Filter(threshold float64) []ContinentBar {
	bars := make([]ContinentBar, 0, len(ct))
	for _, label := range ct.Labels() {
		population := ct[label]
		if float64(population) >= threshold {
			bars = append(bars, ContinentBar{Label: label, Population: population})
		}
	}
	return bars
}

// Labels returns the continent names in ascending order
func (ct ContinentTotals) Labels() []string {
	labels := make([]string, 0, len(ct))
	for label := range ct {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Total returns the population over all continents
func (ct ContinentTotals) Total() int64 {
	var total int64
	for _, population := range ct {
		total += population
	}
	return total
}

// Max returns the largest continent total, 0 for an empty mapping
func (ct ContinentTotals) Max() int64 {
	var largest int64
	for _, population := range ct {
		if population > largest {
			largest = population
		}
	}
	return largest
}
