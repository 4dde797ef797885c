// Package sketch stores minimizer sets as .shs files and compares them.
//
// File layout (all little-endian):
//
//	int64   n        number of keys
//	uint64  key[n]   keys, ascending and distinct when written by this package
//
// A file may be gzip-compressed as a whole; readers detect this from the
// 0x1f8b magic, writers compress when the path ends in ".gz".
//
// Keys are 64-bit: sketches of encoders with 128-bit keys must fit in the
// low word (see FromKeys).
package sketch

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/twotwotwo/sorts/sortutil"
	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/kmerlath/kmer"
)

// Sentinel errors for sketch decoding.
var (
	// ErrTruncated indicates fewer keys than the header announced.
	ErrTruncated = errors.New("sketch: truncated key list")

	// ErrCorrupt indicates an impossible header.
	ErrCorrupt = errors.New("sketch: corrupt header")

	// ErrWideKey indicates a key that does not fit in 64 bits.
	ErrWideKey = errors.New("sketch: key wider than 64 bits")
)

// preallocation cap for untrusted headers
const maxPrealloc = 1 << 20

// FromKeys converts packed keys to the 64-bit file form.
func FromKeys(keys []kmer.Key) ([]uint64, error) {
	out := make([]uint64, len(keys))
	for i, k := range keys {
		if !k.Fits64() {
			return nil, errors.Wrapf(ErrWideKey, "key %d: %s", i, k)
		}
		out[i] = k.Uint64()
	}
	return out, nil
}

// Normalize sorts keys in place, drops duplicates and returns the distinct
// prefix.
func Normalize(keys []uint64) []uint64 {
	if len(keys) < 2 {
		return keys
	}
	sortutil.Uint64s(keys)
	j := 1
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[j-1] {
			keys[j] = keys[i]
			j++
		}
	}
	return keys[:j]
}

// Write encodes keys in .shs layout.
func Write(w io.Writer, keys []uint64) error {
	bw := bufio.NewWriter(w)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(keys)))
	if _, err := bw.Write(buf[:]); err != nil {
		return errors.Wrap(err, "write sketch header")
	}
	for _, k := range keys {
		binary.LittleEndian.PutUint64(buf[:], k)
		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrap(err, "write sketch keys")
		}
	}
	return errors.Wrap(bw.Flush(), "flush sketch")
}

// Read decodes one .shs payload.
func Read(r io.Reader) ([]uint64, error) {
	br := bufio.NewReader(r)
	var buf [8]byte
	if _, err := io.ReadFull(br, buf[:]); err != nil {
		return nil, errors.Wrap(ErrCorrupt, "missing header")
	}
	n := int64(binary.LittleEndian.Uint64(buf[:]))
	if n < 0 {
		return nil, errors.Wrapf(ErrCorrupt, "key count %d", n)
	}

	keys := make([]uint64, 0, min(n, maxPrealloc))
	for i := int64(0); i < n; i++ {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, errors.Wrapf(ErrTruncated, "got %d of %d keys", i, n)
		}
		keys = append(keys, binary.LittleEndian.Uint64(buf[:]))
	}
	return keys, nil
}

// WriteFile writes keys to path, gzip-compressed when path ends in ".gz".
func WriteFile(path string, keys []uint64) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return errors.Wrapf(Write(fh, keys), "write %s", path)
	}
	gw := gzip.NewWriter(fh)
	if err = Write(gw, keys); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(gw.Close(), "compress %s", path)
}

// ReadFile reads a plain or gzip-compressed .shs file.
func ReadFile(path string) ([]uint64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer fh.Close()

	br := bufio.NewReader(fh)
	var r io.Reader = br
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrapf(err, "decompress %s", path)
		}
		defer gr.Close()
		r = gr
	}
	keys, err := Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return keys, nil
}

// Digest returns the hex BLAKE2b-256 of the normalized keys in file layout.
// Equal key sets have equal digests regardless of order or duplicates.
func Digest(keys []uint64) string {
	norm := Normalize(append([]uint64(nil), keys...))
	h, _ := blake2b.New256(nil)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(norm)))
	h.Write(buf[:])
	for _, k := range norm {
		binary.LittleEndian.PutUint64(buf[:], k)
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Jaccard returns |a∩b| / |a∪b| for normalized sketches, 0 when both are
// empty.
func Jaccard(a, b []uint64) float64 {
	var i, j, inter int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			inter++
			i++
			j++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
