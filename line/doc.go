// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package line implements a display-only line chart with a smooth cubic
// curve.
//
// The value range is the data range padded by RangePadding on both sides,
// clamped at zero from below. Items are spaced evenly right of the Y axis,
// the first one a full step away from it. Consecutive points are joined by
// cubic segments with horizontal tangents, so the curve never overshoots a
// local extreme in X.
package line
