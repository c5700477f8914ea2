package gotransducers

import (
	"context"
	"fmt"
	"strconv"
)

func Example() {
	// keep even elements, multiply them by ten, and stop after two of them
	xf := Compose(
		Filter[[]int](func(elem int) bool {
			return elem%2 == 0
		}),
		Map[[]int](func(elem int) int {
			return elem * 10
		}),
		Take[[]int, int](2),
	)

	// the source is only advanced until the pipeline terminates
	ints, _ := Transduce(context.Background(), FromSlice([]int{1, 2, 3, 4, 5, 6}), xf, Collect[int](), []int{})

	fmt.Printf("%+v\n", ints)
	// Output: [20 40]
}

func ExampleCompose2() {
	// map elements by doubling them, then convert them to strings
	xf := Compose2(Map[[]string](func(elem int) int {
		return elem * 2
	}), Map[[]string](strconv.Itoa))

	strs, _ := TransduceSlice(context.Background(), FromSlice([]int{1, 2, 3, 4, 5}), xf)

	fmt.Printf("%q\n", strs)
	// Output: ["2" "4" "6" "8" "10"]
}

func ExampleChunk() {
	// take five elements from an infinite source, grouped into chunks of two
	xf := Compose2(Take[[][]int, int](5), Chunk[[][]int, int](2))

	chunks, _ := TransduceSlice(context.Background(), Iterate(1, func(elem int) int {
		return elem + 1
	}), xf)

	fmt.Printf("%+v\n", chunks)
	// Output: [[1 2] [3 4] [5]]
}
