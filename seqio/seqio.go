// Package seqio streams FASTA/FASTQ records, plain or compressed, for the
// encoder. It is a thin layer over github.com/shenwei356/bio/seqio/fastx.
//
// Sequences are not validated against an alphabet here: ambiguous or
// unexpected symbols reach the encoder untouched, which turns them into
// invalid keys.
package seqio

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	seq.ValidateSeq = false
}

// Record is one sequence record. Seq is owned by the Record.
type Record struct {
	ID  string
	Seq []byte
}

// Reader yields records from one file.
type Reader struct {
	path string
	r    *fastx.Reader
	n    int
}

// Open opens a FASTA or FASTQ file. Compression is detected from content;
// "-" reads standard input.
func Open(path string) (*Reader, error) {
	r, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &Reader{path: path, r: r}, nil
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (*Record, error) {
	rec, err := r.r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(err, "read record %d of %s", r.n+1, r.path)
	}
	r.n++
	// the fastx record buffer is reused by the next Read
	return &Record{
		ID:  string(rec.ID),
		Seq: append([]byte(nil), rec.Seq.Seq...),
	}, nil
}

// Count returns the number of records read so far.
func (r *Reader) Count() int { return r.n }

// Path returns the file being read.
func (r *Reader) Path() string { return r.path }

// Close releases the underlying file.
func (r *Reader) Close() { r.r.Close() }

// Each calls fn for every record of path, stopping at the first error.
func Each(path string, fn func(*Record) error) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(rec); err != nil {
			return err
		}
	}
}
