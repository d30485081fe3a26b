package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixtures(t *testing.T) {
	assert.ElementsMatch(t, []string{"arrow", "comb", "c_shape", "spiral"}, Names())

	for name, poly := range All() {
		assert.True(t, poly.IsCCW(), "fixture %s should be counterclockwise", name)
		assert.GreaterOrEqual(t, poly.Len(), 3, name)
	}

	assert.Equal(t, 44.0, Load("comb").Area())
	assert.Equal(t, 32.0, Load("c_shape").Area())
	assert.Equal(t, 48.0, Load("spiral").Area())
	assert.Equal(t, 4*44.0, Scale(Load("comb"), 2).Area())
}
