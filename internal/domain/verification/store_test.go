package verification

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAsDuplicatePending(t *testing.T) {
	assert.ErrorIs(t, asDuplicatePending(gorm.ErrDuplicatedKey), ErrDuplicatePending)

	wrapped := fmt.Errorf("insert request: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, asDuplicatePending(wrapped), ErrDuplicatePending)
}

func TestAsDuplicatePendingPassesOtherErrorsThrough(t *testing.T) {
	other := errors.New("connection reset")
	assert.Equal(t, other, asDuplicatePending(other))
	assert.NotErrorIs(t, asDuplicatePending(other), ErrDuplicatePending)

	assert.NoError(t, asDuplicatePending(nil))
}
