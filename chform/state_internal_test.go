package chform

import (
	"testing"

	"github.com/katalvlaran/chsim/phase"
	"github.com/stretchr/testify/require"
)

// TestValidateRejectsBrokenTableau corrupts one field at a time.
func TestValidateRejectsBrokenTableau(t *testing.T) {
	fresh := func(t *testing.T) *State {
		t.Helper()
		st, err := New(3)
		require.NoError(t, err)
		require.NoError(t, st.ApplyAll(X(0), Z(1)))
		require.NoError(t, st.Validate())

		return st
	}

	cases := []struct {
		name    string
		corrupt func(st *State)
	}{
		{"singular G", func(st *State) { st.g.XorRow(1, 1) }},
		{"F not inverse transpose", func(st *State) { st.f.Flip(0, 2) }},
		{"asymmetric F·Mᵀ", func(st *State) { st.m.Flip(0, 1) }},
		{"gamma off quarter", func(st *State) { st.gamma[1] = phase.ExpIPi4 }},
		{"pf off quarter", func(st *State) { st.pf = phase.Exp3IPi4 }},
		{"omega not unit", func(st *State) { st.omega = 2 }},
		{"short v", func(st *State) { st.v = st.v[:2] }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := fresh(t)
			tc.corrupt(st)
			require.ErrorIs(t, st.Validate(), ErrInvalidState)
		})
	}
}
