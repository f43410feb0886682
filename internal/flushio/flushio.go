// Package flushio wraps writers so that buffered output can be flushed
// at well defined points, without double buffering writers that do not
// need it.
package flushio

import (
	"bufio"
	"io"
	"io/ioutil"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// New adapts w into a WriteFlusher. Flushing only matters for writers
// that buffer out of view, so writers that are already flushable pass
// through, in-memory sinks and the discard writer get a no-op Flush,
// and anything else gets a bufio.Writer.
func New(w io.Writer) WriteFlusher {
	if wf, is := w.(WriteFlusher); is {
		return wf
	}
	if w == ioutil.Discard {
		return nopFlusher{w}
	}

	// bytes.Buffer and strings.Builder already hold written output
	type memBuffer interface {
		io.Writer
		Len() int
		Reset()
	}
	if _, is := w.(memBuffer); is {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

// Multi fans writes out to every given WriteFlusher, dropping nils and
// flattening nested multis; it returns nil if none remain.
func Multi(wfs ...WriteFlusher) WriteFlusher {
	var all multi
	for _, wf := range wfs {
		if sub, is := wf.(multi); is {
			all = append(all, sub...)
		} else if wf != nil {
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type multi []WriteFlusher

func (wfs multi) Write(p []byte) (n int, err error) {
	for _, wf := range wfs {
		n, err = wf.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (wfs multi) Flush() (err error) {
	for _, wf := range wfs {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
