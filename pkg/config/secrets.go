package config

import (
	"fmt"
	"strings"
)

// ValidateSecretIDs validates an explicitly supplied secret id list.
// A nil list means "no secrets requested" and is the caller's case to
// handle; an empty non-nil list is a configuration mistake and fails, as
// does any blank or whitespace-only entry.
func ValidateSecretIDs(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: supply at least one secret id or omit the block", ErrEmptySecretList)
	}
	for i, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: entry %d is blank", ErrBlankSecretID, i)
		}
	}
	return nil
}
