package matrix_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleDeterminant expands a 3×3 matrix along its first row.
func ExampleDeterminant() {
	m := [][]int{
		{5, -3, 9},
		{-1, 0, 4},
		{7, 2, 4},
	}
	d, err := matrix.Determinant(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("det =", d)

	// Output:
	// det = -154
}

// ExampleDeterminantAlongCol cross-checks a 4×4 result on the column with a zero.
func ExampleDeterminantAlongCol() {
	m := [][]int{
		{5, 4, 7, -1},
		{0, -4, 2, 7},
		{1, 0, -3, 9},
		{8, 8, 4, 1},
	}
	byRow, _ := matrix.Determinant(m)
	byCol, _ := matrix.DeterminantAlongCol(m, 1)
	fmt.Println(byRow, byCol)

	// Output:
	// -480 -480
}

// ExampleDeterminant_nonSquare shows the shape error surface.
func ExampleDeterminant_nonSquare() {
	_, err := matrix.Determinant([][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Println(errors.Is(err, matrix.ErrNonSquare))
	fmt.Println(err)

	// Output:
	// true
	// Determinant: ValidateSquare: row 0: matrix: matrix is not square
}

// ExampleDeterminantConcurrent fans the first-row cofactors out to two workers.
func ExampleDeterminantConcurrent() {
	m := [][]int{
		{2, 0, 1, 3, 1},
		{1, 1, 0, 2, 0},
		{0, 3, 1, 1, 2},
		{1, 0, 2, 1, 1},
		{3, 1, 0, 0, 1},
	}
	d, err := matrix.DeterminantConcurrent(context.Background(), m, matrix.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seq, _ := matrix.Determinant(m)
	fmt.Println(d == seq)

	// Output:
	// true
}
