package car

import "testing"

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  Toyo  "); got != "toyo" {
		t.Fatalf("NormalizeQuery = %q, want %q", got, "toyo")
	}
	if got := NormalizeQuery(""); got != "" {
		t.Fatalf("expected empty query to stay empty, got %q", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{10, 3, 4},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}
