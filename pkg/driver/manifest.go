package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"l21/interpreter-go/pkg/primitives"
)

// Manifest represents the parsed contents of a session.yml file.
type Manifest struct {
	Path       string
	Name       string
	Prelude    []string
	Primitives []string
	Trace      bool
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses session.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	manifest, err := decodeManifest(file, absPath)
	if err != nil {
		return nil, err
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func decodeManifest(r io.Reader, path string) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", path)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return raw.toManifest(path), nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	for i, entry := range m.Prelude {
		if entry == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("prelude[%d] must be a non-empty path", i))
		}
	}
	seen := make(map[string]bool, len(m.Primitives))
	for i, op := range m.Primitives {
		switch {
		case op == "":
			errs.Issues = append(errs.Issues, fmt.Sprintf("primitives[%d] must be a non-empty operator", i))
		case !primitives.IsPrimitive(op):
			errs.Issues = append(errs.Issues, fmt.Sprintf("primitives[%d] names unknown operator %q", i, op))
		case seen[op]:
			errs.Issues = append(errs.Issues, fmt.Sprintf("primitives[%d] repeats operator %q", i, op))
		}
		seen[op] = true
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// PreludePaths resolves prelude entries relative to the manifest directory.
func (m *Manifest) PreludePaths() []string {
	base := filepath.Dir(m.Path)
	paths := make([]string, 0, len(m.Prelude))
	for _, entry := range m.Prelude {
		if filepath.IsAbs(entry) {
			paths = append(paths, entry)
			continue
		}
		paths = append(paths, filepath.Join(base, entry))
	}
	return paths
}

type manifestFile struct {
	Name       string     `yaml:"name"`
	Prelude    stringList `yaml:"prelude"`
	Primitives stringList `yaml:"primitives"`
	Trace      bool       `yaml:"trace"`
}

func (mf manifestFile) toManifest(path string) *Manifest {
	return &Manifest{
		Path:       path,
		Name:       strings.TrimSpace(mf.Name),
		Prelude:    mf.Prelude.Clone(),
		Primitives: mf.Primitives.Clone(),
		Trace:      mf.Trace,
	}
}

// stringList accepts either a single scalar or a sequence of scalars.
type stringList []string

func (l stringList) Clone() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for i, item := range l {
		out[i] = strings.TrimSpace(item)
	}
	return out
}

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*l = nil
			return nil
		}
		*l = stringList{strings.TrimSpace(value.Value)}
		return nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(value.Content))
		for _, node := range value.Content {
			var str string
			if err := node.Decode(&str); err != nil {
				return err
			}
			items = append(items, str)
		}
		*l = stringList(items)
		return nil
	case yaml.AliasNode:
		return l.UnmarshalYAML(value.Alias)
	case 0:
		*l = nil
		return nil
	default:
		return fmt.Errorf("manifest: expected string or sequence for list but found %s", value.ShortTag())
	}
}
