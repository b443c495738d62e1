package models

// DayStat is one row of the per-day aggregation: total entries for the day
// and the dominant mood category.
type DayStat struct {
	Date    string `json:"date" db:"date"`
	Count   int64  `json:"count" db:"count"`
	TopMood Mood   `json:"topMood" db:"top_mood"`
}

// Streak holds the consecutive-day streak counters.
type Streak struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
}

// ActivityDay is one slot of the fixed 30-day activity bitmap.
type ActivityDay struct {
	Date     string `json:"date"`
	HasEntry int    `json:"hasEntry"`
}

// MoodStats is the full statistics bundle for one user.
type MoodStats struct {
	ByDate       []DayStat      `json:"byDate"`
	Distribution map[Mood]int64 `json:"distribution"`
	Streak       Streak         `json:"streak"`
	Last30       []ActivityDay  `json:"last30"`
}
