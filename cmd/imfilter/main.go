// Command imfilter filters a grayscale image with a named kernel or locates a
// template in it.
//
// Usage:
//
//	imfilter [flags] image
//
// Without -template the image is convolved with -kernel. With -template the
// template is matched against the image and the best positions are printed.
//
// Examples:
//
//	imfilter -kernel sobel-x -out edges.png photo.png
//	imfilter -template eye.png -method ncc -top 3 face.png
//	imfilter -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vision/vision/conv2d"
	"github.com/cwbudde/algo-vision/vision/match"
	"github.com/cwbudde/algo-vision/vision/plane"
)

type options struct {
	input    string
	kernel   string
	template string
	method   string
	top      int
	minDist  int
	out      string
	workers  int
}

func main() {
	var opts options
	flag.StringVar(&opts.kernel, "kernel", "identity", "kernel name for filtering (see -list)")
	flag.StringVar(&opts.template, "template", "", "template image; switches to template matching")
	flag.StringVar(&opts.method, "method", "ncc", "matching method: cc, zmcc or ncc")
	flag.IntVar(&opts.top, "top", 1, "number of match positions to print")
	flag.IntVar(&opts.minDist, "min-dist", 0, "minimum distance between reported matches (0 = half the larger template side)")
	flag.StringVar(&opts.out, "out", "", "write the filtered or response plane as an 8-bit PNG")
	flag.IntVar(&opts.workers, "workers", 0, "parallel workers for filtering (0 = GOMAXPROCS)")
	list := flag.Bool("list", false, "list available kernel names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: imfilter [flags] image\n\n")
		fmt.Fprintf(os.Stderr, "Filters a grayscale image or locates a template in it.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  imfilter -kernel sobel-x -out edges.png photo.png\n")
		fmt.Fprintf(os.Stderr, "  imfilter -template eye.png -method ncc -top 3 face.png\n")
		fmt.Fprintf(os.Stderr, "  imfilter -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.input = flag.Arg(0)

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, name := range conv2d.Names() {
		fmt.Fprintln(w, name)
	}
}

func run(opts options, w io.Writer) error {
	img, err := loadPlane(opts.input)
	if err != nil {
		return err
	}

	var result *plane.Plane
	if opts.template != "" {
		result, err = runMatch(opts, img, w)
	} else {
		result, err = runFilter(opts, img, w)
	}
	if err != nil {
		return err
	}

	if opts.out == "" {
		return nil
	}
	lo, hi := result.Range()
	return savePNG(opts.out, result.Gray(lo, hi))
}

func runFilter(opts options, img *plane.Plane, w io.Writer) (*plane.Plane, error) {
	k, err := conv2d.Named(opts.kernel)
	if err != nil {
		return nil, fmt.Errorf("%w (use -list to see available)", err)
	}

	var convOpts []conv2d.Option
	if opts.workers > 0 {
		convOpts = append(convOpts, conv2d.WithWorkers(opts.workers))
	}

	out, err := conv2d.ConvolveFast(img, k, convOpts...)
	if err != nil {
		return nil, err
	}

	lo, hi := out.Range()
	mean, std := out.MeanStdDev()
	_, err = fmt.Fprintf(w, "kernel %s on %dx%d: min %.4f max %.4f mean %.4f std %.4f\n",
		opts.kernel, img.Rows, img.Cols, lo, hi, mean, std)
	return out, err
}

func runMatch(opts options, img *plane.Plane, w io.Writer) (*plane.Plane, error) {
	method, err := match.ParseMethod(opts.method)
	if err != nil {
		return nil, err
	}

	tmpl, err := loadPlane(opts.template)
	if err != nil {
		return nil, err
	}
	tmpl = cropOdd(tmpl)

	resp, err := match.Match(img, tmpl, method)
	if errors.Is(err, plane.ErrInvalidKernelShape) {
		return nil, fmt.Errorf("template: %w", err)
	}
	if err != nil {
		return nil, err
	}

	minDist := peakSpacing(opts.minDist, tmpl)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rank\tRow\tCol\tScore (%s)\n", method)
	fmt.Fprintf(tw, "----\t---\t---\t-----\n")
	for i, pk := range match.TopPeaks(resp, opts.top, minDist) {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6f\n", i+1, pk.Row, pk.Col, pk.Value)
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write results: %w", err)
	}
	return resp, nil
}

// peakSpacing returns minDist, or half the larger template side when minDist
// is not positive.
func peakSpacing(minDist int, tmpl *plane.Plane) int {
	if minDist > 0 {
		return minDist
	}
	return max(tmpl.Rows, tmpl.Cols) / 2
}

// cropOdd drops the last row and/or column so both dimensions are odd.
func cropOdd(p *plane.Plane) *plane.Plane {
	rows, cols := p.Rows, p.Cols
	if rows > 1 && rows%2 == 0 {
		rows--
	}
	if cols > 1 && cols%2 == 0 {
		cols--
	}
	if rows == p.Rows && cols == p.Cols {
		return p
	}

	out := plane.New(rows, cols)
	for r := 0; r < rows; r++ {
		copy(out.Row(r), p.Row(r)[:cols])
	}
	return out
}
