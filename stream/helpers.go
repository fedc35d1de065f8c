package stream

import (
	"bufio"
	"io"
)

// LineFilter returns an io.Reader that only outputs lines matching the predicate.
// Lines are delimited by '\n'. The newline character is included in the line
// passed to the predicate and in the output.
//
// Example - keep only lines containing a match:
//
//	re := bearpig.MustCompile("ERR[0-9]+")
//	r := stream.LineFilter(input, func(line []byte) bool {
//	    return re.FindFirst(string(line)).Success
//	})
//	io.Copy(os.Stdout, r)
func LineFilter(r io.Reader, pred func(line []byte) bool) io.Reader {
	return newLineReader(r, func(line []byte) []byte {
		if pred(line) {
			return line
		}
		return nil
	})
}

// LineTransform returns an io.Reader that transforms each line using the given function.
// Lines are delimited by '\n'. The newline character is included in the line
// passed to the function. The function should return the transformed line
// (including newline if desired); returning nil drops the line.
func LineTransform(r io.Reader, fn func(line []byte) []byte) io.Reader {
	return newLineReader(r, fn)
}

// lineReader reads whole lines from source and serves fn's output.
type lineReader struct {
	source *bufio.Reader
	fn     func(line []byte) []byte
	out    []byte
	err    error
}

func newLineReader(r io.Reader, fn func(line []byte) []byte) *lineReader {
	return &lineReader{
		source: bufio.NewReaderSize(r, 4096),
		fn:     fn,
	}
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		line, err := r.source.ReadBytes('\n')
		if len(line) > 0 {
			r.out = r.fn(line)
		}
		if err != nil {
			r.err = err
		}
	}
	n := copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}
