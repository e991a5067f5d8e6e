package database

// DataStore is the full set of data operations used by the services.
type DataStore interface {
	ProjectRepository
	TaskRepository
}

var _ DataStore = (*Repository)(nil)
