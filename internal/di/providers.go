package di

import (
	"streakd/internal/auth"
	"streakd/internal/services"
	"streakd/internal/storage/interfaces"
)

// provideSessionStore narrows the streak service to the session-store
// view the auth manager depends on.
func provideSessionStore(service services.StreakServiceInterface) auth.SessionStore {
	return service
}

// providePersister narrows the scheduler to the synchronous write-through
// view the controllers depend on.
func providePersister(scheduler interfaces.SchedulerInterface) interfaces.PersisterInterface {
	return scheduler
}
