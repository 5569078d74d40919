package types

// DailyGoal tracks one recurring daily target. Current only moves toward
// Target; once Completed flips true the goal is frozen until the next
// daily reset. Reward is the coin credit granted on completion.
type DailyGoal struct {
	GoalID      string
	ProfileID   string
	Name        string
	Target      int64
	Current     int64
	Reward      int64
	Completed   bool
	LastUpdated string // Calendar day (YYYY-MM-DD) of the last reset.
}

// Achievement is a one-way unlock. Reward coins are credited exactly once,
// when Unlocked first flips true.
type Achievement struct {
	AchievementID string
	ProfileID     string
	Name          string
	Description   string
	Reward        int64
	Unlocked      bool
}

// Reward is a purchasable symbol pack. Purchased is one-way false to true;
// buying deducts Cost coins and installs the pack's category and symbols.
type Reward struct {
	RewardID  string
	ProfileID string
	Name      string
	Cost      int64
	Purchased bool
}
