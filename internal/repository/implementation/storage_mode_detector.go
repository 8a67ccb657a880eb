package implementation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/contract"

	"gorm.io/gorm"
)

// StorageModeDetector probes the schema of the embeddings table and
// caches the result for the process lifetime. Only a successful probe is
// cached: a connectivity failure returns an error and leaves the
// detector unresolved, so the next call probes again once the database
// recovers. Schema changes after a successful probe are an operational
// event and require a restart.
type StorageModeDetector struct {
	db       *gorm.DB
	log      logger.ILogger
	mu       sync.Mutex
	detected bool
	mode     contract.StorageMode
}

func NewStorageModeDetector(db *gorm.DB, log logger.ILogger) *StorageModeDetector {
	return &StorageModeDetector{
		db:  db,
		log: log,
	}
}

func (d *StorageModeDetector) Mode(ctx context.Context) (contract.StorageMode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.detected {
		return d.mode, nil
	}

	var udtName string
	err := d.db.WithContext(ctx).
		Raw(`SELECT udt_name FROM information_schema.columns
		     WHERE table_name = 'note_embeddings' AND column_name = 'embedding_value'`).
		Row().
		Scan(&udtName)

	mode, err := classifyProbe(udtName, err)
	if err != nil {
		// Transient failure, not evidence of absence. Do not cache.
		d.log.Error("embedding-store", "storage mode probe failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}

	if mode == contract.StorageModeUnavailable && udtName != "" {
		d.log.Warn("embedding-store", "unrecognized embedding column type, feature disabled", map[string]interface{}{
			"udt_name": udtName,
		})
	}

	d.mode = mode
	d.detected = true
	d.log.Info("embedding-store", "detected embedding storage mode", map[string]interface{}{
		"mode": string(d.mode),
	})
	return d.mode, nil
}

// classifyProbe maps the probe outcome to a storage mode. An empty probe
// result (sql.ErrNoRows) means the table or column is not provisioned,
// which is the soft Unavailable mode; any other error is a real failure
// that must surface to the caller.
func classifyProbe(udtName string, err error) (contract.StorageMode, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return contract.StorageModeUnavailable, nil
	}
	if err != nil {
		return "", fmt.Errorf("probe embedding storage mode: %w", err)
	}
	return modeForColumnType(udtName), nil
}

func modeForColumnType(udtName string) contract.StorageMode {
	switch udtName {
	case "vector":
		return contract.StorageModeNativeVector
	case "jsonb", "json":
		return contract.StorageModeGenericJSON
	default:
		return contract.StorageModeUnavailable
	}
}
