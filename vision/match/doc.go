// Package match provides 2D template matching built on conv2d.
//
// Three similarity measures are available, in increasing order of
// invariance:
//
//   - CrossCorrelate: plain sliding dot product of the template over the
//     zero-padded image.
//   - ZeroMeanCrossCorrelate: the template mean is removed first, so a
//     uniform brightness offset applied to the template does not change the
//     result.
//   - NormalizedCrossCorrelate: both the template and every image patch are
//     standardized to zero mean and unit variance, making the score invariant
//     to brightness and contrast changes of the patch.
//
// Every function returns a response plane with the dimensions of the image.
// Output cell (i, j) scores the template centered on image pixel (i, j).
//
// # Usage
//
//	resp, err := match.NormalizedCrossCorrelate(img, tmpl)
//	row, col, score := match.FindPeak(resp)
//
// Flat patches (zero standard deviation) score 0 under normalized
// cross-correlation rather than producing a division error.
package match
