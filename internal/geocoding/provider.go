package geocoding

import (
	"context"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
)

// Provider turns a free-text address into coordinates.
// It is used when a lookup request carries an address but no coordinates.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
