package interfaces

// PersisterInterface is the synchronous write-through view of the
// persistence layer. Callers that mutate durable state use it to get the
// change on disk before acknowledging anything.
type PersisterInterface interface {
	Persist() error
}

type SchedulerInterface interface {
	PersisterInterface
	Init()
	Stop()
	Restore() error
}
