package services

import (
	"errors"
	"fmt"

	"explorewithme/internal/domain"
)

// lookupErr turns a repository ErrNotFound into a descriptive NotFound error
// and wraps anything else.
func lookupErr(err error, entity string, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFoundf("%s with id=%d was not found", entity, id)
	}
	return fmt.Errorf("get %s %d: %w", entity, id, err)
}
