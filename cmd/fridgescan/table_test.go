package main

import (
	"strings"
	"testing"

	"fridgescan/internal/scan"
)

func TestHumanContainer(t *testing.T) {
	cases := []struct {
		in   scan.ContainerType
		want string
	}{
		{scan.ContainerSteelDabba, "Steel Dabba"},
		{scan.ContainerTupperware, "Tupperware"},
		{scan.ContainerNone, ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := humanContainer(tc.in); got != tc.want {
			t.Fatalf("humanContainer(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0b1f2c3d-aaaa-bbbb-cccc-dddddddddddd"); got != "0b1f2c3d" {
		t.Fatalf("unexpected short id %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("short input must pass through, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Name", "Conf"},
		[][]string{
			{"0b1f2c3d", "Spinach", "98"},
			{"9e8d7c6b", "Whole Milk"}, // short row padded
		},
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)

	for _, want := range []string{"ID", "NAME", "Spinach", "Whole Milk", "98"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty output for no headers")
	}
}
