package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// DefaultDepartments are created on startup when missing.
var DefaultDepartments = []string{"CS", "MATH", "PHYS", "ENGL", "ECON"}

// DepartmentSeeder inserts a department unless one with the name exists.
type DepartmentSeeder interface {
	EnsureExists(ctx context.Context, name string) (bool, error)
}

// CreateDefaultData creates the default departments if they don't exist.
// Every name is attempted; failures are joined into the returned error.
func CreateDefaultData(ctx context.Context, departments DepartmentSeeder, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default departments...")

	var finalErr error
	created := 0
	for _, name := range DefaultDepartments {
		inserted, err := departments.EnsureExists(ctx, name)
		if err != nil {
			lgr.Error().Err(err).Str("department", name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if inserted {
			created++
			lgr.Info().Str("department", name).Msg("Default department created")
		}
	}

	lgr.Info().Int("created", created).Msg("Default data check complete")
	return finalErr
}
