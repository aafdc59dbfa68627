package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration 输入参数不合法，计算前即拒绝
	ErrInvalidConfiguration = errors.New("calculator: invalid configuration")
	// ErrResourceLimitExceeded 时间层数超过配置的上限
	ErrResourceLimitExceeded = errors.New("calculator: resource limit exceeded")
	// ErrComputationFault 迭代过程中出现非有限值
	ErrComputationFault = errors.New("calculator: computation fault")
)

// FaultError 记录第一个出现非有限值的节点
type FaultError struct {
	Row   int     // 时间层
	Node  int     // 节点编号
	Hour  float64 // 对应时刻，h
	Value float64
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("%v: T[%d, %d] = %v at %.4f h", ErrComputationFault, e.Row, e.Node, e.Value, e.Hour)
}

func (e *FaultError) Unwrap() error {
	return ErrComputationFault
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidConfiguration}, args...)...)
}
