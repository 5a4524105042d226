package dto

import "gorm.io/datatypes"

type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	DueDate     *datatypes.Date `json:"due_date"`
}

// Pointer fields distinguish "not sent" from "set to zero value" on
// partial updates.
type UpdateTaskRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	Priority    *string         `json:"priority"`
	DueDate     *datatypes.Date `json:"due_date"`
}

// TaskFilter narrows a list to the caller's matching tasks. The literal
// value "All" (what the dashboard filter dropdowns send) is treated the
// same as absent.
type TaskFilter struct {
	Status   string
	Priority string
	Search   string
}
