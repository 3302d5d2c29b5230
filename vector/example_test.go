package vector_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tmatrix/vector"
)

// ExampleVector_Mul shows that Mul is elementwise, not a dot product.
func ExampleVector_Mul() {
	a, _ := vector.Of(5, 5, 5, 5)
	b, _ := vector.Of(2, 2, 2, 2)

	p, err := a.Mul(b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)

	c, _ := vector.Of(1, 2, 3)
	_, err = a.Mul(c)
	fmt.Println(errors.Is(err, vector.ErrSizeMismatch))

	// Output:
	// 10 10 10 10
	// true
}

// ExampleVector_Move demonstrates ownership transfer and the empty source.
func ExampleVector_Move() {
	v, _ := vector.Of(1.0, 2.0, 3.0)
	w := v.Move()

	fmt.Println(w.Size(), v.Size())
	_, err := v.At(0)
	fmt.Println(errors.Is(err, vector.ErrIndexOutOfRange))

	// Output:
	// 3 0
	// true
}

// ExampleVector_ReadText reads a fixed number of values from text.
func ExampleVector_ReadText() {
	v, _ := vector.New[int](3)
	if err := v.ReadText(strings.NewReader("7 8 9")); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.AddScalar(1))

	// Output:
	// 8 9 10
}
