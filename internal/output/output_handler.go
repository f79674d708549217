package output

import (
	"context"
	"errors"

	"github.com/originbyte/ob-sdk-go/internal/models"
)

var ErrNotFound = errors.New("object not found")

type OutputHandler interface {
	// WriteObjects stores objects, replacing older versions of the same id.
	WriteObjects(ctx context.Context, objects []*models.Object) error

	// GetObject returns the stored object with the given id, or ErrNotFound.
	GetObject(ctx context.Context, id string) (*models.Object, error)

	// GetMissingObjectIDs returns the ids that are not stored yet, in order.
	GetMissingObjectIDs(ctx context.Context, ids []string) ([]string, error)

	// Close closes the output handler.
	Close() error
}
