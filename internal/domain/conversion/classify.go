package conversion

import "strings"

// Recognized vocabulary. These are configuration, not algorithm: a
// deployment with a different ingredient vocabulary swaps the lists
// (config keys conversion.flour_keywords / conversion.percentage_groups)
// without touching any computation.
var (
	// DefaultFlourKeywords mark an ingredient as flour when any of them
	// appears anywhere in its name (case-sensitive substring match):
	// high-gluten, medium-gluten, low-gluten, whole-wheat, rye, and the
	// generic word for flour.
	DefaultFlourKeywords = []string{"高筋麵粉", "中筋麵粉", "低筋麵粉", "全麥麵粉", "裸麥粉", "麵粉"}

	// DefaultPercentageGroups is the allow-list of group names that take
	// part in baker's-percentage math: the main dough, the two labeled
	// dough-filling subgroups, and the pre-ferments (poolish, liquid
	// starter, sponge, and the house levain). Membership is exact.
	DefaultPercentageGroups = []string{"主麵團", "麵團餡料A", "麵團餡料B", "波蘭種", "液種", "中種", "魯班種"}

	// DefaultWaterKeywords mark water-like ingredients (water, milks,
	// juices, generic liquids) for the hydration fallback when an
	// ingredient has no reference-table entry.
	DefaultWaterKeywords = []string{"水", "牛奶", "鮮奶", "豆漿", "果汁", "汁", "液"}

	// DefaultEggKeywords mark eggs, counted as 75% water by mass.
	DefaultEggKeywords = []string{"蛋"}
)

// Classifier decides which ingredients count as flour and which groups
// participate in percentage-based scaling. The zero value is unusable;
// construct with NewClassifier and override fields as needed.
type Classifier struct {
	FlourKeywords    []string
	PercentageGroups []string
	WaterKeywords    []string
	EggKeywords      []string
}

func NewClassifier() *Classifier {
	return &Classifier{
		FlourKeywords:    DefaultFlourKeywords,
		PercentageGroups: DefaultPercentageGroups,
		WaterKeywords:    DefaultWaterKeywords,
		EggKeywords:      DefaultEggKeywords,
	}
}

// IsFlour reports whether the ingredient name contains a flour keyword.
func (c *Classifier) IsFlour(name string) bool {
	return containsAny(name, c.FlourKeywords)
}

// IsPercentageGroup reports whether the group is on the allow-list.
// Groups outside it (decoration, generic fillings) are excluded from
// percentage math unless a conversion explicitly opts them in.
func (c *Classifier) IsPercentageGroup(group string) bool {
	for _, g := range c.PercentageGroups {
		if group == g {
			return true
		}
	}
	return false
}

func (c *Classifier) isWaterLike(name string) bool {
	return containsAny(name, c.WaterKeywords)
}

func (c *Classifier) isEgg(name string) bool {
	return containsAny(name, c.EggKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
