package chform_test

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/chsim/chform"
)

// ExampleInnerProduct prepares two Bell states that differ by a relative
// sign and prints their overlap.
func ExampleInnerProduct() {
	a, _ := chform.New(2)
	_ = a.ApplyAll(chform.H(0), chform.CX(0, 1))

	b := a.Clone()
	_ = b.Apply(chform.Z(0))

	same, _ := chform.InnerProduct(a, a)
	orth, _ := chform.InnerProduct(a, b)
	fmt.Printf("%.3f %.3f\n", cmplx.Abs(same), cmplx.Abs(orth))
	// Output: 1.000 0.000
}

// ExampleState_Measure collapses a Bell pair; both qubits agree.
func ExampleState_Measure() {
	st, _ := chform.New(2)
	_ = st.ApplyAll(chform.H(0), chform.CX(0, 1))

	rng := chform.NewRand(7)
	m0, _ := st.Measure(0, rng)
	m1, _ := st.Measure(1, rng)
	fmt.Println(m0 == m1)
	// Output: true
}
