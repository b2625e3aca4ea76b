// Package conv2d provides same-size 2D convolution of a single-channel plane
// with a small odd-sized kernel.
//
// All routines zero-pad the input by half the kernel size on each axis, so
// the output always has the dimensions of the input and is aligned with the
// kernel center.
//
// The package offers one reference and two optimized entry points:
//
//   - Naive: brute-force sliding sum with the kernel used as given (no flip).
//     Mathematically this is a correlation. It is kept as the scalar
//     reference that the template-matching code is validated against.
//   - Convolve: true convolution (kernel flipped on both axes). Each window is
//     extracted into a scratch buffer and reduced with a bulk multiply and sum.
//   - ConvolveFast: same arithmetic as Convolve, with output rows split into
//     bands processed by parallel workers. Results are bit-identical to
//     Convolve.
//
// # Usage
//
//	out, err := conv2d.Convolve(img, kernel)
//	out, err := conv2d.ConvolveFast(img, kernel, conv2d.WithWorkers(4))
//	err := conv2d.ConvolveTo(dst, img, kernel) // reuse an output plane
//
// # Kernels
//
// Kernels must have odd, positive dimensions so that a unique center element
// exists. Even or empty kernels are rejected with plane.ErrInvalidKernelShape.
// A handful of common kernels (box, Gaussian, Sobel, Laplace, sharpen) are
// available through Named and Names.
package conv2d
