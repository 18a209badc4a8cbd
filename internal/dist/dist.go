package dist

// Sdist is a package's source distribution: the archive URL and its
// SHA-256 digest in hex.
type Sdist struct {
	URL    string // e.g., "https://files.pythonhosted.org/.../foo-1.0.tar.gz"
	SHA256 string // hex digest, without the "sha256:" prefix
}

// Package represents one [[package]] record of a lock manifest.
type Package struct {
	Name  string // normalized, e.g., "foo_bar"
	Sdist *Sdist // nil when the record carries no usable sdist
	Line  int    // 1-based line of the record header
}

// HasSdist reports whether the package can be turned into a resource block.
func (p Package) HasSdist() bool {
	return p.Sdist != nil
}
