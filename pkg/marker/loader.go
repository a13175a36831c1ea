package marker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/durp-dev/durp/pkg/errors"
	"github.com/durp-dev/durp/pkg/types"
)

// Loader is the content-loading capability used by detection: it attempts
// to parse the file at path and reports only success or failure.
type Loader interface {
	Load(fsys types.FS, path string) error
}

// Registry is a Loader that picks a Decoder by file extension
type Registry struct {
	decoders map[string]Decoder
}

// NewRegistry creates a registry with every built-in format registered
func NewRegistry() *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}
	r.Register(".json", DecodeJSON)
	r.Register(".toml", DecodeTOML)
	r.Register(".yaml", DecodeYAML)
	r.Register(".yml", DecodeYAML)
	r.Register(".xml", DecodeXML)
	r.Register(".cue", DecodeCUE)
	r.Register(".hcl", DecodeHCL)
	return r
}

// Register associates an extension (with leading dot) with a decoder,
// replacing any previous one
func (r *Registry) Register(ext string, dec Decoder) {
	r.decoders[strings.ToLower(ext)] = dec
}

// Formats returns the registered extensions sorted
func (r *Registry) Formats() []string {
	exts := make([]string, 0, len(r.decoders))
	for ext := range r.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Supports reports whether a decoder exists for the file's extension
func (r *Registry) Supports(path string) bool {
	_, ok := r.decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads path and parses it with the decoder for its extension.
//
// Failures carry distinct codes: ErrMarkerUnsupported when no decoder
// matches, ErrFileNotFound / ErrFileAccess when the file cannot be read,
// and ErrMarkerParse when the content is malformed.
func (r *Registry) Load(fsys types.FS, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := r.decoders[ext]
	if !ok {
		return errors.Newf(errors.ErrMarkerUnsupported, "no decoder for marker format %q", ext).
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(err, errors.ErrFileNotFound, "marker file does not exist").
				WithDetail("path", path)
		}
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read marker file").
			WithDetail("path", path)
	}

	if err := dec(data, path); err != nil {
		return errors.Wrapf(err, errors.ErrMarkerParse, "malformed %s marker", strings.TrimPrefix(ext, ".")).
			WithDetail("path", path)
	}
	return nil
}
