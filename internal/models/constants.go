package models

// DefaultTaskStatus is stored when a task is created without a status.
const DefaultTaskStatus = "PENDING"
