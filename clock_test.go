package smoke

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	if c.Now() != 100 {
		t.Errorf("Now = %v, want 100", c.Now())
	}
	c.Advance(50)
	if c.Now() != 150 {
		t.Errorf("Now after Advance = %v, want 150", c.Now())
	}
	c.Set(7)
	if c.Now() != 7 {
		t.Errorf("Now after Set = %v, want 7", c.Now())
	}
}

func TestSystemClock_Monotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	time.Sleep(2 * time.Millisecond)
	b := c.Now()
	if a < 0 {
		t.Errorf("first reading negative: %v", a)
	}
	if b <= a {
		t.Errorf("clock not advancing: %v then %v", a, b)
	}
}
