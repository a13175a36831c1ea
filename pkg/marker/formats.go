package marker

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/beevik/etree"
	"github.com/hashicorp/hcl/v2/hclparse"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder parses data in one format. filename is used for error positions.
type Decoder func(data []byte, filename string) error

// DecodeJSON requires data to be exactly one JSON value
func DecodeJSON(data []byte, _ string) error {
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after top-level value")
	}
	return nil
}

// DecodeTOML requires data to be a valid TOML document
func DecodeTOML(data []byte, _ string) error {
	var v map[string]interface{}
	return toml.Unmarshal(data, &v)
}

// DecodeYAML requires data to be a valid YAML document
func DecodeYAML(data []byte, _ string) error {
	var v interface{}
	return yaml.Unmarshal(data, &v)
}

// DecodeXML requires data to be a well-formed XML document with a root element
func DecodeXML(data []byte, _ string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return err
	}
	if doc.Root() == nil {
		return fmt.Errorf("document has no root element")
	}
	return nil
}

// DecodeCUE requires data to compile as CUE
func DecodeCUE(data []byte, filename string) error {
	v := cuecontext.New().CompileBytes(data, cue.Filename(filename))
	return v.Err()
}

// DecodeHCL requires data to parse as native HCL syntax
func DecodeHCL(data []byte, filename string) error {
	_, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return diags
	}
	return nil
}
