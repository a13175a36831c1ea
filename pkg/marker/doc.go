// Package marker loads component marker files.
//
// A marker file is only meaningful if it parses in the format its extension
// declares. The package keeps a registry of decoders keyed by extension:
//
//   - .json          encoding/json
//   - .toml          go-toml/v2
//   - .yaml, .yml    yaml.v3
//   - .xml           etree
//   - .cue           CUE
//   - .hcl           HCL v2
//
// Decoders only report success or failure; the parsed content is discarded.
package marker
