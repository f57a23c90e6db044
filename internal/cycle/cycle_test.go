package cycle

import "testing"

func TestNext(t *testing.T) {
	items := []string{"a", "b", "c"}
	tests := []struct {
		name    string
		current string
		wrap    bool
		want    string
	}{
		{"from start", "a", false, "b"},
		{"no current picks first", "", false, "a"},
		{"unknown current picks first", "ghost", true, "a"},
		{"last without wrap stays", "c", false, "c"},
		{"last with wrap loops", "c", true, "a"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Next(items, tc.current, tc.wrap)
			if !ok || got != tc.want {
				t.Fatalf("Next(%q, wrap=%v) = %q %v, want %q", tc.current, tc.wrap, got, ok, tc.want)
			}
		})
	}
}

func TestPrevious(t *testing.T) {
	items := []string{"a", "b", "c"}
	tests := []struct {
		name    string
		current string
		wrap    bool
		want    string
	}{
		{"from end", "c", false, "b"},
		{"no current picks last", "", false, "c"},
		{"first without wrap stays", "a", false, "a"},
		{"first with wrap loops", "a", true, "c"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Previous(items, tc.current, tc.wrap)
			if !ok || got != tc.want {
				t.Fatalf("Previous(%q, wrap=%v) = %q %v, want %q", tc.current, tc.wrap, got, ok, tc.want)
			}
		})
	}
}

func TestEmptySequence(t *testing.T) {
	if _, ok := Next(nil, "a", true); ok {
		t.Fatalf("Next on empty sequence reported ok")
	}
	if _, ok := Previous(nil, "", false); ok {
		t.Fatalf("Previous on empty sequence reported ok")
	}
}

func TestFullWrapCycle(t *testing.T) {
	items := []string{"a", "b", "c"}
	current := ""
	seen := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		next, ok := Next(items, current, true)
		if !ok {
			t.Fatalf("Next failed at step %d", i)
		}
		seen = append(seen, next)
		current = next
	}
	want := []string{"a", "b", "c", "a"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
}
