package service

import (
	"fmt"
	"sort"
	"strings"
)

type ownerStat struct {
	owner string
	value float64
}

// leaderLine returns the best value in the list and the owner holding
// it. Owners tied for the lead are joined into one comma-separated
// string.
func leaderLine(statsList []ownerStat, highFirst bool) (float64, string) {
	if len(statsList) == 0 {
		return 0, ""
	}

	sorted := make([]ownerStat, len(statsList))
	copy(sorted, statsList)
	sort.SliceStable(sorted, func(i, j int) bool {
		if highFirst {
			return sorted[i].value > sorted[j].value
		}
		return sorted[i].value < sorted[j].value
	})

	leaders := []string{sorted[0].owner}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].value != sorted[0].value {
			break
		}
		leaders = append(leaders, sorted[i].owner)
	}

	return sorted[0].value, strings.Join(leaders, ", ")
}

// ordinal renders 1 as "1st", 22 as "22nd", 113 as "113th".
func ordinal(n int) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}
