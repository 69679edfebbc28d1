// SPDX-License-Identifier: MIT

package register

import (
	"sort"

	"github.com/katalvlaran/qsim/matrix"
)

// maxTargets caps k so that 1<<k cannot overflow. Any k this large already
// exceeds every register that fits in memory.
const maxTargets = 62

// validateOperation checks an operation against an n-qubit register.
// Order: empty targets, matrix shape, duplicates (lowest repeated index),
// then range in target order.
func validateOperation(n int, targets []int, m *matrix.Dense) error {
	k := len(targets)
	if k == 0 {
		return &OperationError{Kind: NoTargets}
	}

	var rows, cols int
	if m != nil {
		rows, cols = m.Shape()
	}
	if m == nil || k > maxTargets || rows != 1<<k || cols != 1<<k {
		return invalidDimensions(rows, cols)
	}

	sorted := append([]int(nil), targets...)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return invalidTarget(sorted[i])
		}
	}

	for _, t := range targets {
		if t < 0 || t >= n {
			return invalidTarget(t)
		}
	}

	return nil
}

// validateQubit checks a single measurement target.
func validateQubit(n, t int) error {
	if t < 0 || t >= n {
		return invalidTarget(t)
	}

	return nil
}
