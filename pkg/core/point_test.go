package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: -4}
	q := Point{X: 1, Y: 2}

	assert.Equal(t, Point{X: 4, Y: -2}, p.Add(q))
	assert.Equal(t, Point{X: 2, Y: -6}, p.Sub(q))
	assert.Equal(t, Point{X: 6, Y: -8}, p.Scale(2))
	assert.Equal(t, 5.0, p.Mag())
}

func TestSum(t *testing.T) {
	assert.Equal(t, Point{}, Sum())
	assert.Equal(t, Point{X: 6, Y: 3}, Sum(
		Point{X: 1, Y: 1},
		Point{X: 2, Y: 0},
		Point{X: 3, Y: 2},
	))
}

func TestAxisComponentAndOther(t *testing.T) {
	p := Point{X: 7, Y: 9}

	assert.Equal(t, 7.0, p.Component(AxisX))
	assert.Equal(t, 9.0, p.Component(AxisY))
	assert.Equal(t, AxisY, AxisX.Other())
	assert.Equal(t, AxisX, AxisY.Other())
}
