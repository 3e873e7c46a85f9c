// SPDX-License-Identifier: MIT

// Package config loads process-wide defaults for the unfolding engine from
// the environment.
//
//	UNFOLD_SYMPREC    positional tolerance for atom matching (default 1e-5)
//	UNFOLD_NDIM       degrees of freedom per atom (default 3)
//	UNFOLD_LOG_LEVEL  debug|info|warn|error (default warn)
package config
