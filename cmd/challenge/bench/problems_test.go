package bench

import (
	"reflect"
	"testing"
)

func TestParseProblems(t *testing.T) {
	cases := []struct {
		spec string
		want []int
	}{
		{"7", []int{7}},
		{"1-4", []int{1, 2, 3, 4}},
		{"1,3,5", []int{1, 3, 5}},
		{"1-3,9", []int{1, 2, 3, 9}},
		{"5,1-3,2", []int{1, 2, 3, 5}},
		{" 2 , 4 ", []int{2, 4}},
	}
	for _, tc := range cases {
		got, err := parseProblems(tc.spec)
		if err != nil {
			t.Fatalf("parseProblems(%q): %v", tc.spec, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("parseProblems(%q) = %v, want %v", tc.spec, got, tc.want)
		}
	}
}

func TestParseProblemsRejectsBadSpecs(t *testing.T) {
	for _, spec := range []string{"", "0", "-3", "5-2", "a", "1,,2", "1-2-3"} {
		if _, err := parseProblems(spec); err == nil {
			t.Fatalf("parseProblems(%q): expected error", spec)
		}
	}
}
