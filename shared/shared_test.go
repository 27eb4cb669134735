package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quedee/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}
