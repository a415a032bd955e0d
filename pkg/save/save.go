// Package save persists a local gazetteer in its plain form. JSON is
// the canonical representation; YAML is offered for human review. Both
// round-trip through the plain form, so journal order and crosswalk
// contents survive a save/load cycle.
package save

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/gazetteer/pkg/errors"
	"github.com/agentstation/gazetteer/pkg/gazetteers"
)

// Gazetteer writes a local gazetteer using the given options. With a
// writer the output goes there; with a path the file is created along
// with any missing parent directories; with neither an error is
// returned.
func Gazetteer(l *gazetteers.Local, opts ...Option) error {
	options := Defaults().Apply(opts...)
	plain := l.ToPlain()

	if w := options.Writer(); w != nil {
		return encode(w, plain, options.Format())
	}
	path := options.Path()
	if path == "" {
		return errors.NewValidationError("save", "", "either a path or a writer is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapIO("mkdir", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := encode(f, plain, options.Format()); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

func encode(w io.Writer, plain gazetteers.PlainLocal, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(plain)
		if err != nil {
			return errors.WrapParse("yaml", "gazetteer", err)
		}
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", "gazetteer", err)
		}
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(plain); err != nil {
			return errors.WrapParse("json", "gazetteer", err)
		}
		return nil
	}
}

// Load reads a gazetteer saved by Gazetteer. The format follows the
// filename extension.
func Load(path string, opts ...gazetteers.LocalOption) (*gazetteers.Local, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()
	return LoadReader(f, FormatForPath(path), opts...)
}

// LoadReader reads a gazetteer in the given format from r.
func LoadReader(r io.Reader, format Format, opts ...gazetteers.LocalOption) (*gazetteers.Local, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "gazetteer", err)
	}
	var plain gazetteers.PlainLocal
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &plain); err != nil {
			return nil, errors.WrapParse("yaml", "gazetteer", err)
		}
	default:
		if err := json.Unmarshal(data, &plain); err != nil {
			return nil, errors.WrapParse("json", "gazetteer", err)
		}
	}
	return gazetteers.LocalFromPlain(plain, opts...)
}

// ExportFilename derives a timestamped filename for an export of the
// titled gazetteer, like "my-gazetteer-20260831T120000Z.json".
func ExportFilename(title string, now utc.Time, format Format) string {
	slug := slugify(title)
	if slug == "" {
		slug = "gazetteer"
	}
	return slug + "-" + now.Format("20060102T150405Z") + format.Extension()
}

// slugify lowercases the title and collapses runs of non-alphanumerics
// to single hyphens.
func slugify(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}
	return b.String()
}
