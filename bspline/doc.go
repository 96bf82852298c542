// Package bspline fits tensor-product interpolating B-spline surfaces over
// rectangular grids.
//
// 🚀 What:
//
//	Given ascending axes x (length nx), y (length ny) and a table z[i][j],
//	Fit returns a surface S of degree (kx, ky) with S(x[i], y[j]) = z[i][j].
//	Knots follow the FITPACK interpolation rule (s = 0):
//	  • odd degree:  interior knots at data points x[k/2+1 .. n-k/2-2]
//	    (not-a-knot end conditions for cubics);
//	  • even degree: interior knots at midpoints between data points.
//
// ⚙️ How:
//
//	The coefficient matrix C solves Ax · C · Byᵀ = Z, where Ax and By are
//	the collocation matrices of each axis. Both are factorized once with
//	gonum's LU and applied axis by axis.
//
// Evaluation clamps arguments into the fitted rectangle, so the surface is
// constant-continued outside it rather than extrapolated.
//
// A Surface is immutable after Fit and safe for concurrent Eval.
//
// Complexity:
//
//   - Fit:  O(nx³ + ny³ + nx·ny·(nx+ny)) time, O(nx² + ny² + nx·ny) memory.
//   - Eval: O(kx·ky + log nx + log ny) time, no allocation.
package bspline
