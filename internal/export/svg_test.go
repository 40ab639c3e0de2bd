package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatticeSVG(t *testing.T) {
	out := LatticeSVG([][]int8{{1, -1}, {0, 1}}, 4)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, `width="8" height="8"`)
	assert.Equal(t, 2, strings.Count(out, colorUp))
	assert.Equal(t, 1, strings.Count(out, colorDown))
	assert.Contains(t, out, `<rect x="4.0" y="4.0"`)
}

func TestLatticeSVGEmpty(t *testing.T) {
	assert.Empty(t, LatticeSVG(nil, 4))
	assert.Empty(t, LatticeSVG([][]int8{{1}}, 0))
}

func TestSeriesSVG(t *testing.T) {
	assert.Empty(t, SeriesSVG([]float64{1}, 100, 50, "#fff"))

	out := SeriesSVG([]float64{-2, -1, -1.5}, 100, 50, "#00ff00")
	assert.Contains(t, out, `stroke="#00ff00"`)
	assert.Contains(t, out, "M0.0,")
	assert.Equal(t, 2, strings.Count(out, " L"))
}
