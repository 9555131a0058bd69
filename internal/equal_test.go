package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

type withSlice struct{ items []int }

func TestIdentical(t *testing.T) {
	slice := []int{1, 2}
	m := map[string]int{"a": 1}
	p := &point{1, 2}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"nil", nil, nil, true},
		{"nil and value", nil, 0, false},
		{"unset", Unset, Unset, true},
		{"unset and nil", Unset, nil, false},
		{"unset and zero", 0, Unset, false},
		{"same int", 1, 1, true},
		{"different int", 1, 2, false},
		{"different types", int32(1), int64(1), false},
		{"NaN", math.NaN(), math.NaN(), false},
		{"struct by value", point{1, 2}, point{1, 2}, true},
		{"same pointer", p, p, true},
		{"equal pointees", p, &point{1, 2}, false},
		{"same slice", slice, slice, true},
		{"resliced", slice, slice[:1], false},
		{"equal slices", slice, []int{1, 2}, false},
		{"same map", m, m, true},
		{"equal maps", m, map[string]int{"a": 1}, false},
		{"non comparable struct", withSlice{slice}, withSlice{slice}, false},
		{"interface holding a slice", [1]any{slice}, [1]any{slice}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identical(tt.a, tt.b))
		})
	}
}
