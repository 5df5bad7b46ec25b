// SPDX-License-Identifier: MIT

package matrix

// White-box bridge for matrix_test: compiled only with the package's tests.

var (
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
	// ExportedCloseEnough exposes the AllClose scalar predicate.
	ExportedCloseEnough = closeEnough
)

// PanicEpsilonInvalid_TestOnly avoids a magic string in panic assertions.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
