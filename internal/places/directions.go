package places

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"googlemaps.github.io/maps"
)

// WalkingDirections returns the steps of the first walking route from origin to destination.
// Provider order is kept and distances stay as the provider formatted them.
func (gp *GoogleProvider) WalkingDirections(
	ctx context.Context,
	origin, destination models.Coordinates,
) ([]models.DirectionStep, error) {
	req := &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: destination.String(),
		Mode:        maps.TravelModeWalking,
	}

	routes, _, err := gp.client.Directions(ctx, req)
	if err != nil {
		return nil, classify(ErrDirections, err)
	}

	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: no routes returned", ErrDirections)
	}
	legs := routes[0].Legs
	if len(legs) == 0 || legs[0] == nil {
		return nil, fmt.Errorf("%w: route has no legs", ErrDirections)
	}

	steps := make([]models.DirectionStep, 0, len(legs[0].Steps))
	for _, step := range legs[0].Steps {
		if step == nil {
			continue
		}
		steps = append(steps, models.DirectionStep{
			Instruction: step.HTMLInstructions,
			Distance:    step.Distance.HumanReadable,
		})
	}

	gp.log.DebugContext(ctx, "Walking directions fetched", "steps", len(steps))

	return steps, nil
}
