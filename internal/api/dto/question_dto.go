package dto

// SubmitQuestionRequest payload for question intake.
type SubmitQuestionRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Details     string `json:"details"`
	IsAnonymous bool   `json:"isAnonymous"`
}
