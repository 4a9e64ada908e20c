package car

import "errors"

var (
	ErrStatusRentedManual = errors.New("cannot manually set status to 'Rented', use the rental menu")
	ErrCarCurrentlyRented = errors.New("car is currently rented, finish the rental first")
)

// CheckManualStatusChange 校验人工修改车辆状态是否允许。
// Rented 只能由租赁流程写入；处于 Rented 的车辆在还车前不允许任何修改。
func CheckManualStatusChange(current, next string) error {
	if next == StatusRented {
		return ErrStatusRentedManual
	}
	if current == StatusRented {
		return ErrCarCurrentlyRented
	}
	return nil
}
