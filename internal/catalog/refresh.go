package catalog

import (
	"fmt"

	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/services"
)

// RefreshFallbackMessage is used when a failed refresh carries no error of its own.
const RefreshFallbackMessage = "Error while refreshing packages"

// NewRefreshOutcome interprets the result of the refresh call.
func NewRefreshOutcome(res services.Result) models.RefreshOutcome {
	var body models.RefreshResponse
	if err := res.Decode(&body); err != nil {
		return models.RefreshOutcome{Message: err.Error()}
	}

	if !body.Success {
		msg := body.Error
		if msg == "" {
			msg = RefreshFallbackMessage
		}
		return models.RefreshOutcome{Message: msg}
	}

	return models.RefreshOutcome{
		Success: true,
		Message: fmt.Sprintf("%d packages refreshed successfully!", body.Count),
	}
}
