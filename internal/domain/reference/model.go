package reference

// Entry is one row of the ingredient hydration reference table.
// Hydration is a percentage in [0,100]: 水 is 100, 蜂蜜 17.
type Entry struct {
	Name      string  `json:"name"`
	Hydration float64 `json:"hydration"`
}
