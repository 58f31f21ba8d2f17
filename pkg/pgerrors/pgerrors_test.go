package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	serialization := fmt.Errorf("commit: %w", &pq.Error{Code: "40001"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsSerializationFailure(unique))

	assert.True(t, IsSerializationFailure(serialization))
	assert.False(t, IsUniqueViolation(serialization))

	assert.False(t, IsUniqueViolation(errors.New("23505")))
	assert.False(t, IsSerializationFailure(nil))
}
