package track

// Class is one course the user is taking or has completed. GPAPoints stays
// nil until the class completes; only then does it count toward overall GPA.
type Class struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Credits   int      `json:"credits"`
	Threshold string   `json:"threshold"` // passing target letter: A|B|C
	GPAPoints *float64 `json:"gpa_points"`
	CreatedAt int64    `json:"created_at,omitempty"`
}

// Category is a weighted bucket of graded items within a class (e.g.
// "Exams" at 60%). A class with no categories grades its items flat.
type Category struct {
	ID      string  `json:"id"`
	ClassID string  `json:"class_id"`
	Name    string  `json:"name"`
	Weight  float64 `json:"weight"`
}

// GradedItem is one exam or assignment. Weight is a percent of its category
// (or of the class when CategoryID is empty). Score is nil until graded.
type GradedItem struct {
	ID         string   `json:"id"`
	ClassID    string   `json:"class_id"`
	CategoryID string   `json:"category_id,omitempty"`
	Name       string   `json:"name"`
	Weight     float64  `json:"weight"`
	Score      *float64 `json:"score"`
	DueAt      int64    `json:"due_at,omitempty"`
}

// StudySession is a logged block of study time for a class.
type StudySession struct {
	ID        string `json:"id"`
	ClassID   string `json:"class_id,omitempty"`
	Minutes   int    `json:"minutes"`
	Note      string `json:"note,omitempty"`
	StartedAt int64  `json:"started_at"`
}

// Expense is one spending record.
type Expense struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category,omitempty"`
	Note     string  `json:"note,omitempty"`
	SpentAt  int64   `json:"spent_at"`
}

// MoodEntry is a daily 1–5 mood rating.
type MoodEntry struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	Note       string `json:"note,omitempty"`
	RecordedAt int64  `json:"recorded_at"`
}
