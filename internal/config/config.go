package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	shellerrors "pake/internal/infrastructure/errors"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Document names used in error context
const (
	AppDocument  = "app.json"
	PakeDocument = "pake.json"
)

// URLType selects how WindowConfig.URL is interpreted
type URLType string

const (
	URLTypeWeb   URLType = "web"
	URLTypeLocal URLType = "local"
)

// WindowConfig describes one content window
type WindowConfig struct {
	URL         string  `json:"url"`
	URLType     URLType `json:"url_type"`
	Transparent bool    `json:"transparent"`
	Fullscreen  bool    `json:"fullscreen"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Resizable   bool    `json:"resizable"`
}

// UserAgent holds one user-agent string per supported OS
type UserAgent struct {
	MacOS   string `json:"macos"`
	Linux   string `json:"linux"`
	Windows string `json:"windows"`
}

// PakeConfig is the window/user-agent document
type PakeConfig struct {
	Windows   []WindowConfig `json:"windows"`
	UserAgent UserAgent      `json:"user_agent"`
}

// PrimaryWindow returns the first configured window. Load guarantees there is one.
func (c PakeConfig) PrimaryWindow() WindowConfig {
	return c.Windows[0]
}

// AppMetadata is the host framework document, consumed read-only
type AppMetadata struct {
	ProductName string `json:"product_name" yaml:"product_name"`
	Version     string `json:"version" yaml:"version"`
	Identifier  string `json:"identifier" yaml:"identifier"`
}

// Config bundles both embedded documents. It is built once at startup and
// never mutated afterwards.
type Config struct {
	App  AppMetadata
	Pake PakeConfig
}

// Load parses and validates the application metadata and window documents.
// Any failure is a packaging defect and is reported as fatal.
func Load(appDoc, pakeDoc []byte) (*Config, error) {
	app, err := LoadAppMetadata(appDoc)
	if err != nil {
		return nil, err
	}

	pake, err := LoadPakeConfig(pakeDoc)
	if err != nil {
		return nil, err
	}

	return &Config{App: app, Pake: pake}, nil
}

// LoadAppMetadata decodes the metadata document. Well-formed JSON is decoded
// as JSON; anything else is read as YAML.
func LoadAppMetadata(doc []byte) (AppMetadata, error) {
	var meta AppMetadata
	if json.Valid(doc) {
		if err := json.Unmarshal(doc, &meta); err != nil {
			return AppMetadata{}, shellerrors.HandleConfigParse("load_app_metadata", AppDocument, err)
		}
	} else if err := yaml.Unmarshal(doc, &meta); err != nil {
		return AppMetadata{}, shellerrors.HandleConfigParse("load_app_metadata", AppDocument, err)
	}

	meta.ProductName = strings.TrimSpace(meta.ProductName)
	if meta.ProductName == "" {
		return AppMetadata{}, shellerrors.HandleConfigParse("load_app_metadata", AppDocument,
			errors.New("product_name is required"))
	}
	if strings.ContainsAny(meta.ProductName, `/\`) || meta.ProductName == "." || meta.ProductName == ".." {
		return AppMetadata{}, shellerrors.HandleConfigParse("load_app_metadata", AppDocument,
			fmt.Errorf("product_name %q is not a valid directory name", meta.ProductName))
	}

	return meta, nil
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(pakeSchema))
	})
	return schema, schemaErr
}

// LoadPakeConfig validates the window document against its schema, decodes
// it and checks that every web target is an absolute URI.
func LoadPakeConfig(doc []byte) (PakeConfig, error) {
	s, err := compiledSchema()
	if err != nil {
		return PakeConfig{}, shellerrors.HandleConfigParse("compile_schema", PakeDocument, err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return PakeConfig{}, shellerrors.HandleConfigParse("validate_pake_config", PakeDocument, err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, e := range result.Errors() {
			sb.WriteString("- ")
			sb.WriteString(e.String())
			sb.WriteString("\n")
		}
		return PakeConfig{}, shellerrors.HandleConfigParse("validate_pake_config", PakeDocument,
			fmt.Errorf("config validation failed:\n%s", sb.String()))
	}

	var cfg PakeConfig
	dec := json.NewDecoder(bytes.NewReader(doc))
	if err := dec.Decode(&cfg); err != nil {
		return PakeConfig{}, shellerrors.HandleConfigParse("decode_pake_config", PakeDocument, err)
	}

	for _, w := range cfg.Windows {
		if w.URLType == URLTypeWeb {
			if err := ValidateWebURL(w.URL); err != nil {
				return PakeConfig{}, err
			}
		}
	}

	return cfg, nil
}

// ParseWebURL parses raw as an absolute URI
func ParseWebURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, shellerrors.HandleInvalidURL("parse_web_url", raw, err.Error())
	}
	if !u.IsAbs() {
		return nil, shellerrors.HandleInvalidURL("parse_web_url", raw, "missing scheme")
	}
	if u.Host == "" && u.Opaque == "" {
		return nil, shellerrors.HandleInvalidURL("parse_web_url", raw, "missing host")
	}
	return u, nil
}

// ValidateWebURL reports whether raw is usable as a web navigation target
func ValidateWebURL(raw string) error {
	_, err := ParseWebURL(raw)
	return err
}
