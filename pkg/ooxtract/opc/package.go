// Package opc reads the parts of an Open Packaging Conventions container,
// the ZIP layout shared by .xlsx and .docx files.
package opc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/richardlehane/mscfb"
)

var (
	// ErrPackageNotFound indicates the package path does not exist.
	ErrPackageNotFound = errors.New("package not found")

	// ErrPackageCorrupt indicates the file is not a readable ZIP container.
	ErrPackageCorrupt = errors.New("package corrupt")

	// ErrPartMissing indicates the requested part is absent from the package.
	// Callers usually treat it as an optional feature that is not present.
	ErrPartMissing = errors.New("part missing")

	// ErrEncryptedPackage indicates a password-protected OOXML file, which is
	// stored as an OLE2 compound file rather than a ZIP. It wraps ErrPackageCorrupt.
	ErrEncryptedPackage = fmt.Errorf("%w: encrypted package", ErrPackageCorrupt)

	// ErrLegacyFormat indicates a pre-2007 binary document. It wraps ErrPackageCorrupt.
	ErrLegacyFormat = fmt.Errorf("%w: legacy binary format", ErrPackageCorrupt)
)

// Package is an opened OOXML container.
type Package struct {
	closer io.Closer
	files  []*zip.File
	index  map[string]*zip.File
	folded map[string]*zip.File
}

// Open opens the package at path. The returned Package must be closed.
func Open(path string) (*Package, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrPackageNotFound, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrPackageNotFound, path)
	}

	rc, err := zip.OpenReader(path)
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && rc != nil) {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPackageCorrupt, path, err)
		}
		defer f.Close()
		return nil, classifyNonZip(f, path, err)
	}

	p := newPackage(&rc.Reader)
	p.closer = rc
	return p, nil
}

// New reads a package from r. It is used for packages that are already in
// memory; Close is a no-op for such packages. Non-ZIP input is classified
// the same way Open does.
func New(r io.ReaderAt, size int64) (*Package, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil && !(errors.Is(err, zip.ErrInsecurePath) && zr != nil) {
		return nil, classifyNonZip(r, "in-memory package", err)
	}
	return newPackage(zr), nil
}

func newPackage(zr *zip.Reader) *Package {
	p := &Package{
		files:  zr.File,
		index:  make(map[string]*zip.File, len(zr.File)),
		folded: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		name := normalizeName(f.Name)
		if _, dup := p.index[name]; !dup {
			p.index[name] = f
		}
		lower := strings.ToLower(name)
		if _, dup := p.folded[lower]; !dup {
			p.folded[lower] = f
		}
	}
	return p
}

// Close releases the underlying file handle.
func (p *Package) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// List returns the part names in archive order. Directory entries are skipped.
func (p *Package) List() []string {
	names := make([]string, 0, len(p.files))
	for _, f := range p.files {
		if f.FileInfo().IsDir() {
			continue
		}
		names = append(names, normalizeName(f.Name))
	}
	return names
}

// Has reports whether the package contains the named part.
func (p *Package) Has(name string) bool {
	return p.lookup(name) != nil
}

// Read returns the raw bytes of the named part. Part names are matched
// exactly first and then case-insensitively, as OPC part names are.
func (p *Package) Read(name string) ([]byte, error) {
	f := p.lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrPartMissing, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrPackageCorrupt, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPackageCorrupt, name, err)
	}
	return data, nil
}

func (p *Package) lookup(name string) *zip.File {
	name = normalizeName(name)
	if f, ok := p.index[name]; ok {
		return f
	}
	return p.folded[strings.ToLower(name)]
}

// normalizeName strips a leading slash and converts backslashes, which some
// producers write into the central directory.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	return strings.TrimPrefix(name, "/")
}

// classifyNonZip inspects input that failed to open as a ZIP. Encrypted
// OOXML and legacy binary documents are both OLE2 compound files.
func classifyNonZip(r io.ReaderAt, name string, zipErr error) error {
	doc, err := mscfb.New(r)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPackageCorrupt, name, zipErr)
	}

	legacy := false
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptedPackage", "EncryptionInfo":
			return fmt.Errorf("%w: %s", ErrEncryptedPackage, name)
		case "WordDocument", "Workbook", "Book", "PowerPoint Document":
			legacy = true
		}
	}
	if legacy {
		return fmt.Errorf("%w: %s", ErrLegacyFormat, name)
	}
	return fmt.Errorf("%w: %s: compound file is not an OOXML package", ErrPackageCorrupt, name)
}
