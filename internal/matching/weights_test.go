package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeights(t *testing.T) {
	tests := []struct {
		name      string
		w         [3]float64
		wantErr   bool
		wantField string
	}{
		{"default split", [3]float64{0.5, 0.3, 0.2}, false, ""},
		{"all on skills", [3]float64{1, 0, 0}, false, ""},
		{"within tolerance", [3]float64{0.5, 0.3, 0.2000001}, false, ""},
		{"sum above one", [3]float64{0.6, 0.3, 0.2}, true, "weights"},
		{"sum below one", [3]float64{0.4, 0.3, 0.2}, true, "weights"},
		{"negative", [3]float64{1.2, -0.2, 0}, true, "weights.experience"},
		{"nan", [3]float64{math.NaN(), 0.5, 0.5}, true, "weights.skills"},
		{"percentages", [3]float64{50, 30, 20}, true, "weights"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWeights(tt.w[0], tt.w[1], tt.w[2])
			if !tt.wantErr {
				require.NoError(t, err)
				assert.InDelta(t, 1.0, w.Sum(), weightTolerance)
				return
			}

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
			assert.Equal(t, Weights{}, w)
		})
	}
}

func TestWeights_Combine(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 82.0, w.Combine(100, 40, 100), 1e-9)
	assert.InDelta(t, 0.0, w.Combine(0, 0, 0), 1e-9)
	assert.InDelta(t, 100.0, w.Combine(100, 100, 100), 1e-9)
}

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Field: "weights", Message: "must sum to 1.0"}
	assert.Equal(t, "configuration error in weights: must sum to 1.0", err.Error())
}
