package gotransducers

import (
	"context"
	"strconv"
	"testing"

	"github.com/matryer/is"
)

func TestIdentity(t *testing.T) {
	is := is.New(t)

	rf := Collect[int]()

	is.True(Identity[[]int, int]()(rf) == rf)
}

func TestCompose_Empty(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	result, err := TransduceSlice(ctx, FromSlice([]int{1, 2, 3}), Compose[[]int, int]())

	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})
}

func TestCompose_Order(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xf := Compose(Map[[]int](inc), Map[[]int](double))

	result, err := TransduceSlice(ctx, FromSlice([]int{1, 2, 3}), xf)

	is.NoErr(err)
	is.Equal(result, []int{4, 6, 8})
}

func TestCompose_Nil(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.Equal(recover(), "gotransducers.Compose: nil transducer")
	}()

	Compose(Map[[]int](inc), nil)
}

func TestCompose2(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xf := Compose2(Filter[[]string](even), Map[[]string](strconv.Itoa))

	result, err := TransduceSlice(ctx, FromSlice([]int{1, 2, 3, 4}), xf)

	is.NoErr(err)
	is.Equal(result, []string{"2", "4"})
}

func TestCompose3(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xf := Compose3(Map[[]int](strconv.Itoa), Map[[]int](strLen), Map[[]int](double))

	result, err := TransduceSlice(ctx, FromSlice([]int{1, 22, 333}), xf)

	is.NoErr(err)
	is.Equal(result, []int{2, 4, 6})
}

func TestCompose4(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xf := Compose4(Map[[]string](strconv.Itoa), Map[[]string](strLen), Take[[]string, int](2),
		Map[[]string](strconv.Itoa))

	result, err := TransduceSlice(ctx, FromSlice([]int{1, 22, 333}), xf)

	is.NoErr(err)
	is.Equal(result, []string{"1", "2"})
}

func TestCompose_FusionEquivalence(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xf := Compose(Map[[]int](inc), Map[[]int](double))

	for _, ints := range testInputs() {
		expected := []int{}
		for _, i := range ints {
			expected = append(expected, double(inc(i)))
		}

		result, err := TransduceSlice(ctx, FromSlice(ints), xf)

		is.NoErr(err)
		is.Equal(result, expected)
	}
}

func TestCompose_FilterFusion(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	fused := Filter[[]int](And(even, positive))
	chained := Compose(Filter[[]int](even), Filter[[]int](positive))

	for _, ints := range testInputs() {
		expected, err := TransduceSlice(ctx, FromSlice(ints), fused)
		is.NoErr(err)

		result, err := TransduceSlice(ctx, FromSlice(ints), chained)
		is.NoErr(err)

		is.Equal(result, expected)
	}
}

func TestCompose_Associative(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xfs := []Transducer[[]int, int, int]{
		Map[[]int](inc),
		Filter[[]int](even),
		Take[[]int, int](2),
	}

	for _, xf1 := range xfs {
		for _, xf2 := range xfs {
			for _, xf3 := range xfs {
				left := Compose(Compose(xf1, xf2), xf3)
				right := Compose(xf1, Compose(xf2, xf3))

				for _, ints := range testInputs() {
					leftResult, err := TransduceSlice(ctx, FromSlice(ints), left)
					is.NoErr(err)

					rightResult, err := TransduceSlice(ctx, FromSlice(ints), right)
					is.NoErr(err)

					is.Equal(leftResult, rightResult)
				}
			}
		}
	}
}

func TestCompose_IdentityLaws(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	xfs := []Transducer[[]int, int, int]{
		Map[[]int](inc),
		Filter[[]int](even),
		Take[[]int, int](2),
		Compose(Filter[[]int](positive), Take[[]int, int](1)),
	}

	for _, xf := range xfs {
		for _, ints := range testInputs() {
			expected, err := TransduceSlice(ctx, FromSlice(ints), xf)
			is.NoErr(err)

			left, err := TransduceSlice(ctx, FromSlice(ints), Compose(Identity[[]int, int](), xf))
			is.NoErr(err)

			right, err := TransduceSlice(ctx, FromSlice(ints), Compose(xf, Identity[[]int, int]()))
			is.NoErr(err)

			is.Equal(left, expected)
			is.Equal(right, expected)
		}
	}
}

func testInputs() [][]int {
	return [][]int{
		{},
		{1},
		{2},
		{1, 2, 3, 4, 5, 6},
		{-4, -3, 0, 7, 8, 10, 12},
	}
}

func inc(i int) int {
	return i + 1
}

func double(i int) int {
	return i * 2
}

func even(i int) bool {
	return i%2 == 0
}

func positive(i int) bool {
	return i > 0
}

func strLen(s string) int {
	return len(s)
}
