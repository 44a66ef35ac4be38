package util

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		in      string
		want    uint
		wantErr bool
	}{
		{"10", 10, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseID(c.in)
		if c.wantErr {
			if !errors.Is(err, ErrInvalidID) {
				t.Errorf("ParseID(%q) err = %v, want ErrInvalidID", c.in, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParseID(%q) = %d, %v; want %d", c.in, got, err, c.want)
		}
	}
}
