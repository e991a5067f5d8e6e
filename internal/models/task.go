package models

// Task belongs to exactly one project, fixed at creation time.
type Task struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"projectId"`
	Title     string `json:"title"`
	Status    string `json:"status"`
}
