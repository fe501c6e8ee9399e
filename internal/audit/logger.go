package audit

import (
	"context"
	"encoding/json"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// Logger persists audit entries through whichever storage backend the
// process was started with.
type Logger struct {
	store storage.Storage
}

func New(store storage.Storage) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(
	ctx context.Context,
	clientID string,
	userID *uint,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ClientID: clientID,
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}
