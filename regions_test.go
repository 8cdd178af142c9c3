package poisson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Regions(t *testing.T) {
	res, err := Sample(testConfig(40, 31, 120, 5, 5), nil)
	require.NoError(t, err)

	regions := res.Regions()
	require.Len(t, regions, len(res.InBounds()))

	total := 0.0
	for i, reg := range regions {
		p := res.Points[reg.Point]
		assert.False(t, p.Inactive, "region %d built from an inactive point", i)
		assert.Equal(t, p.X, reg.Site.X)
		assert.Equal(t, p.Y, reg.Site.Y)

		assert.GreaterOrEqual(t, len(reg.Vertices), 3)
		assert.True(t, reg.Contains(p.X, p.Y), "region %d should contain its site", i)
		total += reg.Area
	}
	assert.InDelta(t, 40*40, total, 1e-4)
}

func TestResult_RegionsNearestSite(t *testing.T) {
	res := &Result{
		RegionSize: 10,
		Points: []Point{
			{X: 2, Y: 2, Parent: -1},
			{X: 8, Y: 2, Parent: 0},
			{X: 12, Y: 5, Parent: 1, Inactive: true},
			{X: 5, Y: 8, Parent: 0},
		},
	}

	regions := res.Regions()
	require.Len(t, regions, 3)
	assert.Equal(t, []int{0, 1, 3}, []int{regions[0].Point, regions[1].Point, regions[2].Point})

	assert.True(t, regions[0].Contains(1, 1))
	assert.False(t, regions[0].Contains(9, 1))
	assert.True(t, regions[1].Contains(9, 1))
	assert.True(t, regions[2].Contains(5, 9.5))
	assert.False(t, regions[2].Contains(1, 1))
}
