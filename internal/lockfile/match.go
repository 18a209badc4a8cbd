package lockfile

import (
	"regexp"
	"strings"

	"github.com/frederic-klein/uv2brew/internal/dist"
)

// PackageHeader opens every package record.
const PackageHeader = "[[package]]"

var (
	propertyRe = regexp.MustCompile(`^([a-z][a-z-]*) = (.*)`)
	nameRe     = regexp.MustCompile(`^name = "(.*)"$`)
	sdistRe    = regexp.MustCompile(`^sdist = \{ url = "([^"]*)", hash = "sha256:([^"]*)", .*\}`)
)

// Property is a "key = value" line. Value is the raw remainder of the line.
type Property struct {
	Key   string
	Value string
}

// IsHeader reports whether line is exactly a package header.
func IsHeader(line string) bool {
	return line == PackageHeader
}

// IsBlank reports whether line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// MatchProperty matches a generic property line.
func MatchProperty(line string) (Property, bool) {
	m := propertyRe.FindStringSubmatch(line)
	if m == nil {
		return Property{}, false
	}
	return Property{Key: m[1], Value: m[2]}, true
}

// MatchName matches `name = "<value>"` and returns the raw value.
func MatchName(line string) (string, bool) {
	m := nameRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchSdist matches an inline sdist table carrying a sha256 hash.
func MatchSdist(line string) (dist.Sdist, bool) {
	m := sdistRe.FindStringSubmatch(line)
	if m == nil {
		return dist.Sdist{}, false
	}
	return dist.Sdist{URL: m[1], SHA256: m[2]}, true
}

// NormalizeName turns a package name into a resource name.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
