package vecnd_test

import (
	"fmt"

	"github.com/hupe1980/vecnd"
)

func ExampleOf() {
	v := vecnd.Of(1, 2, 3)
	fmt.Println(v)
	// Output:
	// (1, 2, 3)
}

func ExampleVector_Add() {
	a := vecnd.Of(1, 2, 3)
	b := vecnd.Of(4, 5, 6)

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}

	fmt.Println(sum)
	// Output:
	// (5, 7, 9)
}

func ExampleVector_Normalize() {
	v := vecnd.Of(3, 4)

	unit, err := v.Normalize()
	if err != nil {
		panic(err)
	}

	fmt.Println(unit)
	fmt.Println(unit.Magnitude())
	// Output:
	// (0.6, 0.8)
	// 1
}

func ExampleVector_Cross() {
	x := vecnd.Of(1, 0, 0)
	y := vecnd.Of(0, 1, 0)

	z, err := x.Cross(y)
	if err != nil {
		panic(err)
	}

	fmt.Println(z)
	// Output:
	// (0, 0, 1)
}

func ExampleVector_Dot() {
	a := vecnd.Of(1, 2, 3)
	b := vecnd.Of(4, 5, 6)

	dot, err := a.Dot(b)
	if err != nil {
		panic(err)
	}

	fmt.Println(dot)
	// Output:
	// 32
}

func ExampleVector_Lerp() {
	a := vecnd.Of(0, 0)
	b := vecnd.Of(10, 20)

	mid, err := a.Lerp(b, 0.5)
	if err != nil {
		panic(err)
	}

	fmt.Println(mid)
	// Output:
	// (5, 10)
}

func ExampleVector_Get() {
	v := vecnd.Of(1, 2, 3)

	if _, err := v.Get(5); err != nil {
		fmt.Println(err)
	}
	// Output:
	// index out of range: 5 (size 3)
}
