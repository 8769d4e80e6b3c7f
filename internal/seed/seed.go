package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
)

// LoadRoster performs the startup import of the roster file.
// A missing or unreadable file is logged and tolerated so the server can start
// and be reloaded later; a malformed file is returned as an error.
func LoadRoster(ctx context.Context, rosterService appServices.RosterService, lgr zerolog.Logger) error {
	lgr.Info().Msg("Importing roster...")

	status, err := rosterService.Reload(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrSourceRead) {
			lgr.Warn().Err(err).Msg("Roster source unavailable, starting with no roster loaded")
			return nil
		}
		return fmt.Errorf("failed to import roster: %w", err)
	}

	lgr.Info().
		Int("instructors", status.Instructors).
		Int("departments", status.Departments).
		Msg("Roster imported")
	return nil
}
