// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported options to matrix_test without widening
// the production API.

// WithCofactorHook exposes withCofactorHook.
var WithCofactorHook = withCofactorHook
