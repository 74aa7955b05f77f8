package termination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stereoglue/stereoglue/termination"
)

func TestStandardBoundDecreasesWithHigherInlierRatio(t *testing.T) {
	s := termination.New(termination.StandardKind, 1, 100000).(*termination.Standard)
	low := s.RequiredIterations(0.2, 4, 0.99)
	high := s.RequiredIterations(0.8, 4, 0.99)
	assert.Greater(t, low, high)
}

func TestStandardBoundClampsToRange(t *testing.T) {
	s := termination.New(termination.StandardKind, 50, 200).(*termination.Standard)
	assert.Equal(t, 200, s.RequiredIterations(0.01, 4, 0.999999))
	assert.Equal(t, 50, s.RequiredIterations(0.999, 4, 0.5))
}

func TestStandardShouldTerminate(t *testing.T) {
	s := termination.New(termination.StandardKind, 1, 1000).(*termination.Standard)
	required := s.RequiredIterations(0.5, 4, 0.99)
	assert.False(t, s.ShouldTerminate(required-1, required))
	assert.True(t, s.ShouldTerminate(required, required))
}

func TestPROSACWithholdsTerminationUntilWindowFull(t *testing.T) {
	p := termination.New(termination.PROSACKind, 1, 1000).(*termination.PROSAC)
	required := p.RequiredIterations(0.9, 4, 0.99)
	assert.False(t, p.ShouldTerminate(required+100, required))

	p.NotifyWindow(50, 50)
	assert.True(t, p.ShouldTerminate(required, required))
}
