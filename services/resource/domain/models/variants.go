package models

// Donation is a fundraising campaign page.
type Donation struct {
	Base
	Target    int64  `json:"target" validate:"gte=0"`
	Collected int64  `json:"collected" validate:"gte=0"`
	Deadline  string `json:"deadline,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Published bool   `json:"published"`
}

// Event is a scheduled gathering. Deleted is the soft-delete flag some
// listings filter on; physical removal goes through the delete flow.
type Event struct {
	Base
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Location  string `json:"location,omitempty" validate:"max=255"`
	Deleted   bool   `json:"isDeleted"`
}

// News is an article.
type News struct {
	Base
	Category  string `json:"category,omitempty" validate:"max=100"`
	Published bool   `json:"published"`
	Deleted   bool   `json:"isDeleted"`
}

// Podcast is an audio episode.
type Podcast struct {
	Base
	AudioURL        string `json:"audioUrl,omitempty" validate:"omitempty,url"`
	DurationMinutes int    `json:"durationMinutes" validate:"gte=0"`
}

// QuizQuestion is one multiple-choice question; Answer indexes Options.
type QuizQuestion struct {
	Prompt  string   `json:"prompt" validate:"required"`
	Options []string `json:"options" validate:"min=2,dive,required"`
	Answer  int      `json:"answer" validate:"gte=0"`
}

// Quiz is a set of questions.
type Quiz struct {
	Base
	Questions []QuizQuestion `json:"questions" validate:"dive"`
	Published bool           `json:"published"`
}
