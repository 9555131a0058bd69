package reactivity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputedSignal(t *testing.T) {
	t.Run("derives value from signal", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double := NewComputedSignal(func(int) int {
			log = append(log, "doubling")
			return count.Get() * 2
		}, 0)
		plustwo := NewComputedSignal(func(int) int {
			log = append(log, "adding")
			return double.Get() + 2
		}, 0)

		assert.Equal(t, 1, count.Get())
		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 4, plustwo.Get())

		count.Set(10)
		assert.Equal(t, 10, count.Get())
		assert.Equal(t, 20, double.Get())
		assert.Equal(t, 22, plustwo.Get())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("holds computation of the last entry", func(t *testing.T) {
		count := NewSignal(1)
		scaled := NewComputedSignal(func(factor int) int {
			return count.Get() * factor
		}, 2)
		assert.Equal(t, 2, scaled.Get())
		assert.Equal(t, 2, scaled.Entry())

		assert.Equal(t, 6, scaled.Set(6))
		assert.Equal(t, 6, scaled.Entry())

		count.Set(3)
		assert.Equal(t, 18, scaled.Get())
	})

	t.Run("does not propagate when value unchanged", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		parity := NewComputedSignal(func(int) int {
			log = append(log, "running parity")
			return count.Get() % 2
		}, 0)
		NewEffect(func() {
			log = append(log, fmt.Sprintf("parity %d", parity.Get()))
		})

		count.Set(3)
		count.Set(4)

		assert.Equal(t, []string{
			"running parity",
			"parity 1",
			"running parity",
			"running parity",
			"parity 0",
		}, log)
	})

	t.Run("compute goes through the computation", func(t *testing.T) {
		double := NewComputedSignal(func(v int) int { return v * 2 }, 1)
		assert.Equal(t, 2, double.Get())

		double.Compute(func(v int) int { return v + 1 })
		assert.Equal(t, 3, double.Entry())
		assert.Equal(t, 6, double.Get())
	})

	t.Run("clear detaches both sides", func(t *testing.T) {
		runs := 0

		count := NewSignal(1)
		double := NewComputedSignal(func(int) int { return count.Get() * 2 }, 0)
		r := NewEffect(func() {
			double.Get()
			runs++
		})
		assert.Equal(t, 1, double.Dependencies())
		assert.Equal(t, 1, double.Subscribers())

		double.Clear()
		assert.Equal(t, 0, double.Dependencies())
		assert.Equal(t, 0, double.Subscribers())
		assert.Equal(t, 0, count.Subscribers())
		assert.Equal(t, 0, r.Dependencies())

		count.Set(5)
		assert.Equal(t, 2, double.Get())
		assert.Equal(t, 1, runs)
	})

	t.Run("is a source for reactives", func(t *testing.T) {
		count := NewSignal(1)
		double := NewComputedSignal(func(int) int { return count.Get() * 2 }, 0)

		r := NewReactive(func(...any) int { return 0 })
		r.Add(double)

		assert.True(t, r.DependsOn(double))
		assert.True(t, double.HasSubscriber(r))
	})

	t.Run("computation reading its own value recurses until it settles", func(t *testing.T) {
		runs := 0

		target := NewSignal(0)
		var step *ComputedSignal[int]
		step = NewComputedSignal(func(int) int {
			runs++
			n := target.Get()
			if step == nil {
				return n
			}

			// each new value re-runs the computation from inside Set
			if cur := step.Get(); cur < n {
				return cur + 1
			}
			return n
		}, 0)
		assert.Equal(t, 1, runs)

		target.Set(5)
		assert.Equal(t, 5, step.Peek())
		assert.Equal(t, 7, runs)
		assert.Equal(t, 2, step.Dependencies())
		assert.True(t, step.HasSubscriber(step.reactive))

		target.Set(7)
		assert.Equal(t, 7, step.Peek())
		assert.Equal(t, 10, runs)
	})
}
