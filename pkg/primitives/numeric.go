package primitives

import (
	"math/big"

	"github.com/nukata/goarith"

	"l21/interpreter-go/pkg/runtime"
)

var zero = goarith.AsNumber(big.NewInt(0))
var one = goarith.AsNumber(big.NewInt(1))

func numbers(op string, args []runtime.Value) ([]goarith.Number, error) {
	out := make([]goarith.Number, len(args))
	for i, arg := range args {
		n, ok := arg.(runtime.NumberValue)
		if !ok || n.Val == nil {
			return nil, failf(op, "argument %d is not a number: %s", i+1, runtime.Inspect(arg))
		}
		out[i] = n.Val
	}
	return out, nil
}

func add(op string, args []runtime.Value) (runtime.Value, error) {
	nums, err := numbers(op, args)
	if err != nil {
		return nil, err
	}
	acc := zero
	for _, n := range nums {
		acc = acc.Add(n)
	}
	return runtime.NumberValue{Val: acc}, nil
}

func mul(op string, args []runtime.Value) (runtime.Value, error) {
	nums, err := numbers(op, args)
	if err != nil {
		return nil, err
	}
	acc := one
	for _, n := range nums {
		acc = acc.Mul(n)
	}
	return runtime.NumberValue{Val: acc}, nil
}

func sub(op string, args []runtime.Value) (runtime.Value, error) {
	nums, err := numbers(op, args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		return runtime.NumberValue{Val: zero.Sub(nums[0])}, nil
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		acc = acc.Sub(n)
	}
	return runtime.NumberValue{Val: acc}, nil
}

func div(op string, args []runtime.Value) (runtime.Value, error) {
	nums, err := numbers(op, args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		nums = []goarith.Number{one, nums[0]}
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(zero) == 0 {
			return nil, failf(op, "division by zero")
		}
		acc = acc.RQuo(n)
	}
	return runtime.NumberValue{Val: acc}, nil
}

func compareWith(accept func(int) bool) func(string, []runtime.Value) (runtime.Value, error) {
	return func(op string, args []runtime.Value) (runtime.Value, error) {
		nums, err := numbers(op, args)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: accept(nums[0].Cmp(nums[1]))}, nil
	}
}
