package port

import "github.com/bnema/tvfocus/internal/domain/entity"

// ConfigSchemaProvider describes the configuration keys the application
// understands.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
