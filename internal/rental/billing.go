package rental

import "time"

// 计费下限：不足一小时按一小时计。
const MinBilledHours = 1

// BilledHours 计费时长：实际耗时向上取整到整小时，下限 1 小时。
func BilledHours(start, end time.Time) int {
	elapsed := end.Sub(start)
	if elapsed <= 0 {
		return MinBilledHours
	}
	hours := int((elapsed + time.Hour - 1) / time.Hour)
	if hours < MinBilledHours {
		return MinBilledHours
	}
	return hours
}

// TotalCost 按还车时刻的小时单价结算（改价后按新价计费）。
func TotalCost(start, end time.Time, pricePerHour float64) float64 {
	return float64(BilledHours(start, end)) * pricePerHour
}
