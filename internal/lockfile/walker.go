// Package lockfile walks a uv lock manifest line by line and extracts the
// source distribution of every package record.
//
// The walk is deliberately shallow: it skips the document preamble, then
// for each [[package]] record scans forward for the name property and,
// after it, for an sdist inline table carrying a sha256 hash. Everything
// else is skipped. Input is consumed once, strictly forward.
package lockfile

import (
	"github.com/frederic-klein/uv2brew/internal/dist"
	"github.com/frederic-klein/uv2brew/internal/lines"
	"github.com/frederic-klein/uv2brew/internal/logging"
)

// Emitter receives every package that has a source distribution, in
// input order.
type Emitter interface {
	Emit(pkg dist.Package) error
}

// Stats counts what a walk has seen so far.
type Stats struct {
	Packages int // records parsed
	Emitted  int // records passed to the emitter
	Skipped  int // records without a usable sdist
}

// Walker drives a lines.Source through the manifest.
type Walker struct {
	src   *lines.Source
	out   Emitter
	log   *logging.Logger
	stats Stats
}

// NewWalker creates a walker reading from src and emitting to out.
func NewWalker(src *lines.Source, out Emitter, log *logging.Logger) *Walker {
	if log == nil {
		log = logging.Nop()
	}
	return &Walker{src: src, out: out, log: log}
}

// Stats returns the counters of the walk.
func (w *Walker) Stats() Stats {
	return w.stats
}

// Walk consumes the whole input. It stops at the first malformed record;
// packages emitted before that point stay emitted.
func (w *Walker) Walk() error {
	w.log.Debug().Msg("parsing lockfile")

	if err := w.skipPreamble(); err != nil {
		return err
	}
	for w.src.HasNext() {
		if err := w.parsePackage(); err != nil {
			return err
		}
	}
	if err := w.src.Err(); err != nil {
		return err
	}

	w.log.Debug().
		Int("packages", w.stats.Packages).
		Int("emitted", w.stats.Emitted).
		Int("skipped", w.stats.Skipped).
		Msg("lockfile done")
	return nil
}

// skipPreamble discards the document-level fields before the first record.
func (w *Walker) skipPreamble() error {
	for w.src.HasNext() {
		line, err := w.src.Peek()
		if err != nil {
			return err
		}
		if _, ok := MatchProperty(line); !ok && !IsBlank(line) {
			w.log.Debug().Str("text", line).Msg("end of preamble")
			return nil
		}
		w.log.Debug().Str("text", line).Msg("skipping preamble line")
		if _, err := w.src.Next(); err != nil {
			return err
		}
	}
	w.log.Debug().Msg("end of input while skipping preamble")
	return nil
}

func (w *Walker) parsePackage() error {
	header, err := w.src.Next()
	if err != nil {
		return err
	}
	if !IsHeader(header) {
		return &MalformedError{Line: w.src.Line(), Text: header, Reason: "expected package header"}
	}

	pkg := dist.Package{Line: w.src.Line()}
	w.stats.Packages++

	if pkg.Name, err = w.parseName(); err != nil {
		return err
	}
	if pkg.Sdist, err = w.parseSdist(); err != nil {
		return err
	}

	if pkg.HasSdist() {
		if err := w.out.Emit(pkg); err != nil {
			return err
		}
		w.stats.Emitted++
	} else {
		w.stats.Skipped++
		w.log.Debug().Str("name", pkg.Name).Int("line", pkg.Line).Msg("no sdist, skipping package")
	}

	return w.skipRest()
}

// parseName consumes properties up to and including the name property.
func (w *Walker) parseName() (string, error) {
	for {
		if !w.src.HasNext() {
			return "", w.truncated("unexpected end of input while parsing name")
		}
		line, err := w.src.Next()
		if err != nil {
			return "", err
		}
		if _, ok := MatchProperty(line); !ok {
			return "", &MalformedError{Line: w.src.Line(), Text: line, Reason: "expected property"}
		}
		if name, ok := MatchName(line); ok {
			return NormalizeName(name), nil
		}
	}
}

// parseSdist scans the rest of the record for an sdist with a sha256
// hash. It returns nil, leaving the header unconsumed, when the next
// record starts first.
func (w *Walker) parseSdist() (*dist.Sdist, error) {
	w.log.Debug().Msg("parsing sdist entry")
	for {
		if !w.src.HasNext() {
			return nil, w.truncated("unexpected end of input while parsing sdist")
		}
		next, err := w.src.Peek()
		if err != nil {
			return nil, err
		}
		if IsHeader(next) {
			w.log.Debug().Msg("new package found, aborting current entry")
			return nil, nil
		}

		line, err := w.src.Next()
		if err != nil {
			return nil, err
		}
		if sdist, ok := MatchSdist(line); ok {
			return &sdist, nil
		}
	}
}

// skipRest discards the remaining lines of the current record.
func (w *Walker) skipRest() error {
	for w.src.HasNext() {
		next, err := w.src.Peek()
		if err != nil {
			return err
		}
		if IsHeader(next) {
			return nil
		}
		w.log.Debug().Str("text", next).Msg("skipping line")
		if _, err := w.src.Next(); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) truncated(reason string) error {
	if err := w.src.Err(); err != nil {
		return err
	}
	return &MalformedError{Line: w.src.Line(), Reason: reason}
}
