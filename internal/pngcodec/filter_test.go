package pngcodec

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnfilter_SingleRowFixtures(t *testing.T) {
	want := []byte{10, 20, 30, 15, 25, 35}
	tests := []struct {
		name     string
		filter   byte
		filtered []byte
	}{
		{name: "none", filter: FilterNone, filtered: []byte{10, 20, 30, 15, 25, 35}},
		{name: "sub", filter: FilterSub, filtered: []byte{10, 20, 30, 5, 5, 5}},
		{name: "up", filter: FilterUp, filtered: []byte{10, 20, 30, 15, 25, 35}},
		{name: "average", filter: FilterAverage, filtered: []byte{10, 20, 30, 10, 15, 20}},
		{name: "paeth", filter: FilterPaeth, filtered: []byte{10, 20, 30, 5, 5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{tt.filter}, tt.filtered...)
			rows, err := Unfilter(raw, 1, 6, 3)
			if err != nil {
				t.Fatalf("Unfilter() error = %v", err)
			}
			if !bytes.Equal(rows[0], want) {
				t.Fatalf("Unfilter() = %v, want %v", rows[0], want)
			}
		})
	}
}

func TestUnfilter_UsesPreviousRow(t *testing.T) {
	row0 := []byte{10, 20, 30, 15, 25, 35}
	row1 := []byte{12, 22, 32, 200, 0, 255}
	tests := []struct {
		name     string
		filter   byte
		filtered []byte
	}{
		{name: "up", filter: FilterUp, filtered: []byte{2, 2, 2, 185, 231, 220}},
		// left-half average: 12-5, 22-10, 32-15; right half: 200-(12+15)/2, 0-(22+25)/2, 255-(32+35)/2
		{name: "average", filter: FilterAverage, filtered: []byte{7, 12, 17, 187, 233, 222}},
		{name: "paeth", filter: FilterPaeth, filtered: []byte{2, 2, 2, 185, 231, 220}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{FilterNone}, row0...)
			raw = append(raw, tt.filter)
			raw = append(raw, tt.filtered...)
			rows, err := Unfilter(raw, 2, 6, 3)
			if err != nil {
				t.Fatalf("Unfilter() error = %v", err)
			}
			if !bytes.Equal(rows[0], row0) {
				t.Fatalf("row 0 = %v, want %v", rows[0], row0)
			}
			if !bytes.Equal(rows[1], row1) {
				t.Fatalf("row 1 = %v, want %v", rows[1], row1)
			}
		})
	}
}

func TestUnfilter_WrapsModulo256(t *testing.T) {
	raw := []byte{FilterSub, 200, 0, 0, 100, 0, 0}
	rows, err := Unfilter(raw, 1, 6, 3)
	if err != nil {
		t.Fatalf("Unfilter() error = %v", err)
	}
	if want := []byte{200, 0, 0, 44, 0, 0}; !bytes.Equal(rows[0], want) {
		t.Fatalf("Unfilter() = %v, want %v", rows[0], want)
	}
}

func TestUnfilter_Errors(t *testing.T) {
	t.Run("unknown filter", func(t *testing.T) {
		_, err := Unfilter([]byte{5, 1, 2, 3}, 1, 3, 3)
		var unsupported UnsupportedFormatError
		if !errors.As(err, &unsupported) {
			t.Fatalf("Unfilter() error = %v, want UnsupportedFormatError", err)
		}
	})
	t.Run("short stream", func(t *testing.T) {
		_, err := Unfilter([]byte{0, 1, 2}, 1, 3, 3)
		var format FormatError
		if !errors.As(err, &format) {
			t.Fatalf("Unfilter() error = %v, want FormatError", err)
		}
	})
}

func TestPaeth(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c uint8
		want    uint8
	}{
		{name: "all equal", a: 3, b: 3, c: 3, want: 3},
		{name: "closest up", a: 12, b: 15, c: 10, want: 15},
		{name: "closest up-left", a: 50, b: 60, c: 55, want: 55},
		{name: "left wins tie with up-left", a: 4, b: 10, c: 8, want: 4},
		{name: "up wins tie with up-left", a: 10, b: 4, c: 8, want: 4},
		{name: "left alone", a: 9, b: 0, c: 0, want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Paeth(tt.a, tt.b, tt.c); got != tt.want {
				t.Fatalf("Paeth(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}
