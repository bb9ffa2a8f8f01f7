package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildit/internal/adapters/detector"
)

func TestInteractive(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected bool
	}{
		{name: "terminal without CI", isTTY: true, ci: "", expected: true},
		{name: "CI=true forces pipes", isTTY: true, ci: "true", expected: false},
		{name: "CI=1 forces pipes", isTTY: true, ci: "1", expected: false},
		{name: "CI=false keeps terminal", isTTY: true, ci: "false", expected: true},
		{name: "not a terminal", isTTY: false, ci: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Interactive(tt.isTTY, tt.ci))
		})
	}
}

func TestIsInteractive_CI(t *testing.T) {
	t.Setenv(detector.CIEnv, "true")
	assert.False(t, detector.IsInteractive())
}
