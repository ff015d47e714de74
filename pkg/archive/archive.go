// Package archive provides glob-based selection of members inside a zip
// archive without extracting it to disk.
package archive

import (
	"archive/zip"
	"io"
	"regexp"
	"strings"

	"github.com/opendatacoop/epc2parquet/pkg/errors"
)

// Archive is an open zip container. It must stay open while any member
// stream obtained from it is being consumed; member access is tied to the
// open container.
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// Member is one named entry in an archive.
type Member struct {
	file *zip.File
}

// Open opens a zip archive read-only. A missing, unreadable or
// structurally invalid container fails here, before any member is yielded.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeArchive, "failed to open archive").
			WithDetail("path", path)
	}
	return &Archive{path: path, zr: zr}, nil
}

// Path returns the archive's file path.
func (a *Archive) Path() string {
	return a.path
}

// Glob returns the members whose full internal path matches the pattern,
// in the archive's listing order. The match is computed once against the
// complete listing; a pattern matching nothing returns an empty slice.
//
// Pattern semantics: `*` matches any run of characters including path
// separators, `?` matches exactly one character.
func (a *Archive) Glob(pattern string) []*Member {
	re := compilePattern(pattern)

	var members []*Member
	for _, f := range a.zr.File {
		if re.MatchString(f.Name) {
			members = append(members, &Member{file: f})
		}
	}
	return members
}

// Close closes the archive. Member streams must not be used afterwards.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// Name returns the member's full internal path.
func (m *Member) Name() string {
	return m.file.Name
}

// Open returns a sequential byte stream over the member from offset 0.
func (m *Member) Open() (io.ReadCloser, error) {
	rc, err := m.file.Open()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeArchive, "failed to open archive member").
			WithDetail("member", m.file.Name)
	}
	return rc, nil
}

// compilePattern translates a glob pattern into an anchored regexp.
// path.Match stops `*` at path separators, which would break patterns
// like `*/certificates.csv` against deeply nested members, so the
// translation is done by hand.
func compilePattern(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}
