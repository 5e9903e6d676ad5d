package domain

import "time"

// Round limits shared by the client-side scorer and server-side re-validation.
const (
	QuestionsPerRound   = 10
	SecondsPerQuestion  = 15
	MaxScorePerQuestion = 250
	MaxRoundScore       = QuestionsPerRound * MaxScorePerQuestion
)

// Question is a quiz question with its per-locale translations.
// CorrectIndex is 0-based and must be a valid index into every
// translation's option list.
type Question struct {
	ID           string                `json:"id"`
	Category     string                `json:"category"`
	CorrectIndex int                   `json:"correctIndex"`
	Difficulty   string                `json:"difficulty"`
	Translations []QuestionTranslation `json:"translations"`
}

// QuestionTranslation holds the localized text for one question.
type QuestionTranslation struct {
	Locale      string   `json:"locale"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
}

// LocalizedQuestion is the projection served to clients: one question
// resolved to a single locale.
type LocalizedQuestion struct {
	ID           string   `json:"id"`
	Category     string   `json:"category"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Difficulty   string   `json:"difficulty"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Round is one completed play-through of a fixed-length quiz.
// Rows are append-only: created on submit, never mutated.
type Round struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Mode         string    `json:"mode"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correctCount"`
	StartedAt    time.Time `json:"startedAt"`
	EndedAt      time.Time `json:"endedAt"`
}

// UserProfile is the server-stored per-user record, created lazily on
// first profile fetch or sync and mutated in place thereafter.
type UserProfile struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Locale        string    `json:"locale"`
	StreakCurrent int       `json:"streakCurrent"`
	StreakBest    int       `json:"streakBest"`
	TotalGames    int       `json:"totalGames"`
	TotalCorrect  int       `json:"totalCorrect"`
	TotalAnswered int       `json:"totalAnswered"`
	AccuracyPct   int       `json:"accuracyPct"`
	Coins         int       `json:"coins"`
	HasPremium    bool      `json:"hasPremium"`
}

// LeaderboardEntry is a derived row, computed per query and never persisted.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	TotalScore  int    `json:"totalScore"`
	GamesPlayed int    `json:"gamesPlayed"`
}

// AdEvent records an ad impression decision made by the client-side gate.
type AdEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"` // interstitial, rewarded, banner
	Placement string    `json:"placement"`
	Timestamp time.Time `json:"timestamp"`
}
