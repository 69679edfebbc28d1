// SPDX-License-Identifier: MIT

package register

// permutation returns π with π[j] = targets[j] for j < k followed by the
// remaining qubits of an n-qubit register in ascending order.
// targets must be distinct and in range.
func permutation(n int, targets []int) []int {
	perm := make([]int, 0, n)
	used := make([]bool, n)
	for _, t := range targets {
		perm = append(perm, t)
		used[t] = true
	}
	for q := 0; q < n; q++ {
		if !used[q] {
			perm = append(perm, q)
		}
	}

	return perm
}

// sourceIndices maps each permuted index i to the original index
// Σ_b bit_b(i) << perm[b]. Gathering state[src[i]] yields the permuted vector;
// scattering out[i] to src[i] undoes it.
//
// Complexity: O(2^n · n).
func sourceIndices(perm []int) []int {
	n := len(perm)
	src := make([]int, 1<<n)
	for i := range src {
		j := 0
		for b := 0; b < n; b++ {
			if i&(1<<b) != 0 {
				j |= 1 << perm[b]
			}
		}
		src[i] = j
	}

	return src
}
