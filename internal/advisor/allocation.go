package advisor

import (
	"math"
	"sort"
	"strings"

	"investwise-api/internal/models"
)

// Tier is the allocation tier. The two highest behavioral profiles share
// the aggressive tier.
type Tier int

const (
	TierConservative Tier = iota
	TierModerate
	TierBalanced
	TierAggressive
)

func (t Tier) String() string {
	switch t {
	case TierConservative:
		return "conservative"
	case TierModerate:
		return "moderate"
	case TierBalanced:
		return "balanced"
	default:
		return "aggressive"
	}
}

// TierFor maps a risk score onto an allocation tier.
func TierFor(score int) Tier {
	switch {
	case score <= 3:
		return TierConservative
	case score <= 5:
		return TierModerate
	case score <= 7:
		return TierBalanced
	default:
		return TierAggressive
	}
}

var baseAllocations = map[Tier]map[models.Category]int{
	TierConservative: {models.LargeCap: 30, models.MidCap: 5, models.Debt: 40, models.Hybrid: 20, models.International: 5},
	TierModerate:     {models.LargeCap: 30, models.MidCap: 20, models.SmallCap: 5, models.Debt: 25, models.Hybrid: 15, models.International: 5},
	TierBalanced:     {models.LargeCap: 30, models.MidCap: 25, models.SmallCap: 15, models.Debt: 15, models.Hybrid: 10, models.International: 5},
	TierAggressive:   {models.LargeCap: 25, models.MidCap: 30, models.SmallCap: 25, models.Debt: 5, models.Hybrid: 5, models.International: 10},
}

const (
	youngShift  = 10 // debt points moved into equity below 30
	seniorShift = 15 // points moved into debt above 50
	shortShift  = 10 // small/mid cap points moved into debt on a 1-3 year horizon
	elssShare   = 15
)

// Plan computes the target allocation for a risk score, age, goal tags and
// timeline. The result holds only positive shares and sums to exactly 100.
func Plan(score, age int, goals []string, timeline string) models.Allocation {
	raw := make(map[models.Category]int)
	for cat, pct := range baseAllocations[TierFor(score)] {
		raw[cat] = pct
	}

	switch {
	case age < 30:
		raw[models.Debt] -= youngShift
		raw[models.LargeCap] += youngShift / 2
		raw[models.MidCap] += youngShift / 2
	case age > 50:
		raw[models.Debt] += seniorShift
		pullFrom(raw, seniorShift, models.SmallCap, models.MidCap)
	}

	if strings.Contains(timeline, "1-3 years") {
		moved := pullFrom(raw, shortShift, models.SmallCap, models.MidCap)
		raw[models.Debt] += moved
	}

	if models.GoalsInclude(goals, "retirement") {
		raw[models.Debt] += 10
		raw[models.LargeCap] += 5
	}
	if models.GoalsInclude(goals, "tax") {
		raw[models.ELSS] += elssShare
	}

	return Normalize(raw)
}

// pullFrom removes up to amount points from the categories in order, never
// taking a category below zero. It returns the points actually removed.
func pullFrom(raw map[models.Category]int, amount int, from ...models.Category) int {
	taken := 0
	for _, cat := range from {
		if taken == amount {
			break
		}
		take := raw[cat]
		if take > amount-taken {
			take = amount - taken
		}
		if take <= 0 {
			continue
		}
		raw[cat] -= take
		taken += take
	}
	return taken
}

// Normalize scales positive shares to sum to 100 using the largest remainder
// method. Leftover points go to the largest fractional parts, ties resolved
// in canonical category order. Non-positive inputs are dropped.
func Normalize(raw map[models.Category]int) models.Allocation {
	type share struct {
		cat   models.Category
		order int
		floor int
		frac  float64
	}

	sum := 0
	for _, v := range raw {
		if v > 0 {
			sum += v
		}
	}
	out := models.Allocation{}
	if sum == 0 {
		return out
	}

	var shares []share
	assigned := 0
	for i, cat := range models.Categories {
		v := raw[cat]
		if v <= 0 {
			continue
		}
		exact := float64(v) * 100 / float64(sum)
		floor := int(math.Floor(exact))
		shares = append(shares, share{cat: cat, order: i, floor: floor, frac: exact - float64(floor)})
		assigned += floor
	}

	byRemainder := make([]share, len(shares))
	copy(byRemainder, shares)
	sort.SliceStable(byRemainder, func(i, j int) bool {
		if byRemainder[i].frac != byRemainder[j].frac {
			return byRemainder[i].frac > byRemainder[j].frac
		}
		return byRemainder[i].order < byRemainder[j].order
	})
	bonus := make(map[models.Category]int)
	for i := 0; i < 100-assigned && i < len(byRemainder); i++ {
		bonus[byRemainder[i].cat]++
	}

	for _, s := range shares {
		if pct := s.floor + bonus[s.cat]; pct > 0 {
			out[s.cat] = pct
		}
	}
	return out
}
