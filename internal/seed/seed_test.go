package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyroster/internal/app/loader"
	"github.com/yigit/facultyroster/internal/app/repositories"
	"github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
)

func newService(path string) services.RosterService {
	return services.NewRosterService(
		loader.FileLoader{Path: path},
		repositories.NewInstructorRepository(),
		zerolog.Nop(),
	)
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty.csv")
	require.NoError(t, os.WriteFile(path, []byte(`"Colin C. Adams","Mathematics","Professor","1978, B.S., MIT"`+"\n"), 0o600))

	svc := newService(path)
	require.NoError(t, LoadRoster(context.Background(), svc, zerolog.Nop()))

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Instructors)
}

func TestLoadRosterMissingFileIsTolerated(t *testing.T) {
	svc := newService(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, LoadRoster(context.Background(), svc, zerolog.Nop()))

	_, err := svc.Status(context.Background())
	assert.True(t, errors.Is(err, apperrors.ErrRosterNotLoaded))
}

func TestLoadRosterMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty.csv")
	require.NoError(t, os.WriteFile(path, []byte(`"Colin C. Adams","Mathematics","Professor","B.S., MIT"`+"\n"), 0o600))

	err := LoadRoster(context.Background(), newService(path), zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedDegree))
}
