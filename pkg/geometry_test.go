package larcv

import "testing"

func TestPlaneOf(t *testing.T) {
	cases := []struct {
		channel int
		want    int
	}{
		{0, 0},
		{799, 0},
		{800, 1},
		{1599, 1},
		{1600, 2},
		{2399, 2},
		{2400, 2}, // collection plane is wider than the induction planes
		{2559, 2},
		{2560, 0}, // wraps into the next APA
		{5119, 2},
	}
	for _, c := range cases {
		if got := PlaneOf(c.channel); got != c.want {
			t.Errorf("PlaneOf(%d): got %d, want %d", c.channel, got, c.want)
		}
	}
}

func TestAPAOf(t *testing.T) {
	cases := []struct {
		channel int
		want    int
	}{
		{0, 0},
		{2559, 0},
		{2560, 1},
		{5119, 1},
		{5120, 2},
	}
	for _, c := range cases {
		if got := APAOf(c.channel); got != c.want {
			t.Errorf("APAOf(%d): got %d, want %d", c.channel, got, c.want)
		}
	}
}

func TestPlaneRange(t *testing.T) {
	cases := []struct {
		apa, plane, first, last int
	}{
		{0, 0, 0, 799},
		{0, 1, 800, 1599},
		{0, 2, 1600, 2559},
		{1, 0, 2560, 3359},
		{1, 2, 4160, 5119},
	}
	for _, c := range cases {
		first, last := PlaneRange(c.apa, c.plane)
		if first != c.first || last != c.last {
			t.Errorf("PlaneRange(%d, %d): got [%d, %d], want [%d, %d]",
				c.apa, c.plane, first, last, c.first, c.last)
		}
	}
}

func TestTickWindow(t *testing.T) {
	first, last := TickWindow(1)
	if first != 0 || last != 4491 {
		t.Errorf("TickWindow(1): got [%d, %d], want [0, 4491]", first, last)
	}
	first, last = TickWindow(2)
	if first != 2 || last != 4489 {
		t.Errorf("TickWindow(2): got [%d, %d], want [2, 4489]", first, last)
	}
}
