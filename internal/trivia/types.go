package trivia

// QuestionsPerPage is the fixed page size for every paginated view.
const QuestionsPerPage = 10

// AnyCategory selects questions from every category in quiz mode.
const AnyCategory = 0

// Category is a display grouping for questions.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia entry as stored in the catalog.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionsView is the shape shared by the list, search and per-category reads.
type QuestionsView struct {
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []Category `json:"categories,omitempty"`
	CurrentCategory string     `json:"current_category"`
}

// QuizCategory identifies the category a quiz is restricted to.
// ID == AnyCategory means no restriction.
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type,omitempty"`
}

// QuizRequest carries caller-owned quiz session state.
type QuizRequest struct {
	Category          *QuizCategory
	PreviousQuestions []int
}

// QuizResult is the next draw. Question is nil once the quiz is exhausted.
type QuizResult struct {
	Question          *Question `json:"question"`
	PreviousQuestions []int     `json:"previous_questions"`
}

// NewQuestion is the create payload; nil fields are treated as missing.
type NewQuestion struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// QuestionRecord is a validated question ready for insertion.
type QuestionRecord struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// MutationResult is returned by create and delete.
type MutationResult struct {
	ID             int        `json:"id"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}
