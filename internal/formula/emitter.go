package formula

import (
	"errors"
	"fmt"
	"io"

	"github.com/frederic-klein/uv2brew/internal/dist"
)

// ErrNoSdist is returned when a package without a source distribution is
// emitted.
var ErrNoSdist = errors.New("package has no sdist")

const resourceTemplate = `  resource "%s" do
    url "%s"
    sha256 "%s"
  end

`

// Emitter writes Homebrew Formula resource blocks.
type Emitter struct {
	w io.Writer
}

// NewEmitter creates a new resource emitter.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Emit writes one resource block for pkg, followed by a blank line.
func (e *Emitter) Emit(pkg dist.Package) error {
	if !pkg.HasSdist() {
		return fmt.Errorf("emitting %q: %w", pkg.Name, ErrNoSdist)
	}

	// Values are substituted verbatim, not Go-quoted.
	_, err := fmt.Fprintf(e.w, resourceTemplate,
		pkg.Name, pkg.Sdist.URL, pkg.Sdist.SHA256)
	if err != nil {
		return fmt.Errorf("writing resource %q: %w", pkg.Name, err)
	}
	return nil
}
