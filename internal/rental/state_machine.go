package rental

import (
	"fmt"
	"time"
)

// AllowTransition 定义租赁状态机的允许流转关系。
// Finished / Canceled 为终态，不允许再流转。
var AllowTransition = map[Status][]Status{
	StatusActive:   {StatusFinished, StatusCanceled},
	StatusFinished: {},
	StatusCanceled: {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对租赁记录应用状态变更，并在进入终态时写入结束时间。
// 仅在 CanTransition 返回 true 时生效。
func ApplyTransition(r *Rental, to Status, now time.Time) error {
	if r == nil {
		return fmt.Errorf("rental is nil")
	}
	from := r.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid rental status transition: %s -> %s", from, to)
	}

	r.Status = to

	switch to {
	case StatusFinished, StatusCanceled:
		if r.EndTime == nil {
			t := now
			r.EndTime = &t
		}
	}
	return nil
}
