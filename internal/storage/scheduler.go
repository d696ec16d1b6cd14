package storage

import (
	"github.com/roylee0704/gron"
	"streakd/internal/providers"
	"streakd/internal/storage/interfaces"
	"streakd/internal/structures"
	"sync"
	"time"
)

// Scheduler persists the state file on a fixed interval and once more on
// shutdown. Check-ins write through synchronously via Persist, so the
// interval only bounds loss of state mutated outside that path, such as
// session changes.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := time.Duration(s.config.Persistence.SaveInterval) * time.Second

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		start := time.Now()
		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting state: %s", err)
			return
		}
		s.metrics.ObservePersistenceDuration(time.Since(start))
		s.logger.Debugf(providers.TypeApp, "Persisted state to file %s", s.config.Persistence.FilePath)
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting state to file...")
	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting state: %s", err)
		return err
	}
	s.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		metrics:     metrics,
		fileManager: fileManager,
	}
}
