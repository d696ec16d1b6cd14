package storage

import (
	json "github.com/goccy/go-json"
	"os"
	"streakd/internal/models"
	"streakd/internal/providers"
	"streakd/internal/services"
	"streakd/internal/storage/interfaces"
)

type FileManager struct {
	service    services.StreakServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.StreakServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile writes the current state snapshot. The tmp+fsync+rename dance
// keeps the previous record intact if the process dies mid-write, so the
// streak count and last check-in date can never land on disk half-updated.
func (f *FileManager) SaveToFile(fileName string) error {
	snapshot := f.service.GetSnapshot()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores the persisted state. A missing file is a fresh
// install and keeps the zero-value defaults; an unreadable one is logged
// and degraded to the same defaults.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "State file is not a valid zstd stream, starting from defaults")
		return err
	}

	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err != nil {
		f.logger.Warnf(providers.TypeApp, "State file is corrupt, starting from defaults")
		return err
	}
	if storage.Version > models.StorageVersion {
		f.logger.Warnf(providers.TypeApp, "State file version %d is newer than supported %d, starting from defaults", storage.Version, models.StorageVersion)
		return nil
	}

	f.service.PutSnapshot(&storage)
	return nil
}
