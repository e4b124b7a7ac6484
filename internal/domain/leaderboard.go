package domain

import "time"

type LeaderboardEntry struct {
	UserID           string  `json:"user_id"`
	DisplayName      string  `json:"display_name"`
	Role             Role    `json:"role"`
	Value            float64 `json:"value"`
	DisplayValue     string  `json:"display_value"`
	Position         int     `json:"position"`
	PositionChange   int     `json:"position_change"` // positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int     `json:"previous_position"`
}

type Leaderboard struct {
	AccountID       string             `json:"account_id"`
	Metric          string             `json:"metric"`
	Range           DateRange          `json:"range"`
	ComparisonRange *DateRange         `json:"comparison_range,omitempty"`
	Entries         []LeaderboardEntry `json:"entries"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
