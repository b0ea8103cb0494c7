package technique

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogInvariants(t *testing.T) {
	for _, tech := range All() {
		t.Run(tech.ID, func(t *testing.T) {
			if tech.Mode == CountUp {
				assert.Zero(t, tech.FocusDuration)
			}

			if tech.HasCycles {
				assert.Positive(t, tech.DefaultCycles)
			}

			assert.GreaterOrEqual(t, int64(tech.BreakDuration), int64(0))
			assert.GreaterOrEqual(t, int64(tech.LongBreakDuration), int64(0))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pomodoro Technique", DisplayName(Pomodoro))
	assert.Equal(t, "52/17 Method", DisplayName(FiftyTwo))
	assert.Equal(t, "mystery", DisplayName("mystery"))
}

func TestAllIsSorted(t *testing.T) {
	all := All()

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}
