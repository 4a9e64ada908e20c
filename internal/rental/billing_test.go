package rental

import (
	"testing"
	"time"
)

func TestBilledHours(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"one second still bills an hour", time.Second, 1},
		{"one minute still bills an hour", time.Minute, 1},
		{"exactly one hour", time.Hour, 1},
		{"just over an hour rounds up", time.Hour + time.Minute, 2},
		{"ninety minutes rounds up to two", 90 * time.Minute, 2},
		{"two full hours", 2 * time.Hour, 2},
		{"clock skew floors at one", -time.Minute, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BilledHours(start, start.Add(tc.elapsed))
			if got != tc.want {
				t.Fatalf("BilledHours(%v) = %d, want %d", tc.elapsed, got, tc.want)
			}
		})
	}
}

func TestTotalCost(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// 15 美元/小时，租 90 分钟 => 按 2 小时计 30 美元
	got := TotalCost(start, start.Add(90*time.Minute), 15.00)
	if got != 30.00 {
		t.Fatalf("TotalCost(90m, $15/h) = %.2f, want 30.00", got)
	}

	// 1 秒也要按 1 小时结算
	got = TotalCost(start, start.Add(time.Second), 40.00)
	if got != 40.00 {
		t.Fatalf("TotalCost(1s, $40/h) = %.2f, want 40.00", got)
	}
}
