package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAgeGroup_Breakpoints(t *testing.T) {
	cases := []struct {
		from, to, group int
	}{
		{18, 21, 1},
		{22, 24, 2},
		{25, 27, 3},
		{28, 30, 4},
		{31, 33, 5},
		{34, 36, 6},
		{37, 39, 7},
		{40, 42, 8},
		{43, 45, 9},
	}
	for _, tc := range cases {
		for age := tc.from; age <= tc.to; age++ {
			require.Equal(t, tc.group, AgeGroup(age), "age %d", age)
		}
	}
}

func TestAgeGroup_OutOfRange(t *testing.T) {
	for _, age := range []int{-1, 0, 17, 46, 60} {
		require.Equal(t, -1, AgeGroup(age), "age %d", age)
	}
}
