package api

import (
	"fmt"

	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
)

// upstreamError prefers the reason from an Open-Meteo error body, keeping err in the chain.
func upstreamError(errResp any, err error) error {
	if errResp != nil {
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Reason != "" {
			return fmt.Errorf("%s: %w", apiErr.Reason, err)
		}
	}
	return err
}
