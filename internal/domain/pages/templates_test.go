package pages

import (
	"encoding/json"
	"testing"

	"linkpage-app/internal/domain/blocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownTemplate(t *testing.T) {
	assert.True(t, KnownTemplate("musician"))
	assert.True(t, KnownTemplate("barber"))
	assert.True(t, KnownTemplate("business"))
	assert.True(t, KnownTemplate("blogger"))
	assert.False(t, KnownTemplate(""))
	assert.False(t, KnownTemplate("astronaut"))
}

func TestStarterTemplatesUseKnownBlockTypes(t *testing.T) {
	for name, starters := range starterTemplates {
		require.NotEmpty(t, starters, "template %s", name)
		for _, s := range starters {
			assert.True(t, blocks.KnownType(s.Type), "template %s uses unknown block type %s", name, s.Type)

			_, err := json.Marshal(s.Content)
			require.NoError(t, err, "template %s block %s", name, s.Type)
		}
	}
}
