package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, clk.Now().Sub(start))
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	assert.True(t, clk.Now().Equal(target))
}

func TestFakeClock_TimersFireInOrder(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()
	var fired []string
	var at []time.Duration

	clk.AfterFunc(30*time.Millisecond, func() {
		fired = append(fired, "b")
		at = append(at, clk.Now().Sub(start))
	})
	clk.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, "a")
		at = append(at, clk.Now().Sub(start))
	})
	clk.AfterFunc(30*time.Millisecond, func() { fired = append(fired, "c") })

	clk.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, 2, clk.Pending())

	clk.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 30 * time.Millisecond}, at)
	assert.Equal(t, 40*time.Millisecond, clk.Now().Sub(start))
}

func TestFakeClock_Stop(t *testing.T) {
	clk := NewFakeClock()
	fired := false
	timer := clk.AfterFunc(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	clk.Advance(time.Second)
	assert.False(t, fired)
}

func TestFakeClock_NestedTimers(t *testing.T) {
	clk := NewFakeClock()
	count := 0
	var schedule func()
	schedule = func() {
		count++
		clk.AfterFunc(10*time.Millisecond, schedule)
	}
	clk.AfterFunc(10*time.Millisecond, schedule)

	clk.Advance(55 * time.Millisecond)
	assert.Equal(t, 5, count)
	assert.Equal(t, 1, clk.Pending())
}
