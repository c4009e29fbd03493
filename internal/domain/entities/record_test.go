package entities

import "testing"

func TestUniqueValue(t *testing.T) {
	cases := []struct {
		in     any
		want   string
		claims bool
	}{
		{nil, "", false},
		{"", "", false},
		{"   ", "", false},
		{"ABC", "ABC", true},
		{" ABC ", " ABC ", true},
		{float64(7), "7", true},
	}
	for _, tc := range cases {
		got, ok := UniqueValue(tc.in)
		if ok != tc.claims || (ok && got != tc.want) {
			t.Fatalf("UniqueValue(%#v) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.claims)
		}
	}
}
