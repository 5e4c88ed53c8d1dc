package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"magrathea/internal/planet"
)

func TestFormatStats(t *testing.T) {
	got := formatStats([]planet.KindCount{{Kind: "deep-ocean", Count: 3}, {Kind: "beach", Count: 1}})
	assert.Equal(t, "deep-ocean 75.0%, beach 25.0%", got)
	assert.Equal(t, "", formatStats(nil))
}
