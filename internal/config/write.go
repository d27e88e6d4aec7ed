package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rileyhilliard/triage/internal/errors"
	"gopkg.in/yaml.v3"
)

const defaultHeader = `# triage configuration
# Durations use Go syntax (3s, 1m30s). Every key can be overridden with an
# environment variable, e.g. TRIAGE_STORE_FORMAT=yaml.`

// fileConfig mirrors Config with durations as strings so the written file
// reads "3s" rather than nanoseconds.
type fileConfig struct {
	Version   int `yaml:"version"`
	Dashboard struct {
		ToastDuration  string `yaml:"toast_duration"`
		RefreshTimeout string `yaml:"refresh_timeout"`
		DefaultPanel   string `yaml:"default_panel"`
	} `yaml:"dashboard"`
	Collector CollectorConfig `yaml:"collector"`
	Store     StoreConfig     `yaml:"store"`
}

// Marshal renders cfg as commented YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	var fc fileConfig
	fc.Version = cfg.Version
	fc.Dashboard.ToastDuration = cfg.Dashboard.ToastDuration.String()
	fc.Dashboard.RefreshTimeout = cfg.Dashboard.RefreshTimeout.String()
	fc.Dashboard.DefaultPanel = cfg.Dashboard.DefaultPanel
	fc.Collector = cfg.Collector
	fc.Store = cfg.Store

	var root yaml.Node
	if err := root.Encode(&fc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	root.HeadComment = defaultHeader
	if dir := findMapValue(findMapValue(&root, "store"), "dir"); dir != nil {
		dir.LineComment = "# empty means the application data directory"
	}

	return encodeNode(&root)
}

// WriteDefault writes the default config to path, replacing any existing file.
func WriteDefault(path string) error {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't render the default config", "")
	}
	return writeFile(path, data)
}

// Keys returns every key Set accepts, sorted.
func Keys() []string {
	d := defaults()
	keys := make([]string, 0, len(d))
	for k := range d {
		if k == "version" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates a single dotted key (e.g. "store.format") in the config file at
// path, preserving the rest of the document and its comments. The file is
// created if missing. The result must still validate, otherwise the file is
// left untouched.
func Set(path, key, value string) error {
	if _, ok := defaults()[key]; !ok || key == "version" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown config key %q", key),
			"Valid keys: "+strings.Join(Keys(), ", "))
	}

	original, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to read config file", "Check file permissions")
	}

	var root yaml.Node
	if len(bytes.TrimSpace(original)) > 0 {
		if err := yaml.Unmarshal(original, &root); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, "Failed to parse config file", "Check the YAML syntax in "+path)
		}
	}
	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig, "Config file isn't a YAML mapping", "Check the YAML syntax in "+path)
	}

	node := root.Content[0]
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		node = ensureMapping(node, part)
	}
	setScalar(node, parts[len(parts)-1], value)

	data, err := encodeNode(&root)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't render the updated config", "")
	}

	if err := writeFile(path, data); err != nil {
		return err
	}

	cfg, err := Load(path)
	if err == nil {
		err = Validate(cfg)
	}
	if err != nil {
		if restoreErr := restore(path, original); restoreErr != nil {
			return restoreErr
		}
		return err
	}
	return nil
}

func restore(path string, original []byte) error {
	if original == nil {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't remove invalid config file", "Delete "+path+" by hand")
		}
		return nil
	}
	return writeFile(path, original)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory", "Check permissions on "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file", "Check permissions on "+path)
	}
	return nil
}

func encodeNode(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// findMapValue finds a value in a mapping node by key name.
// Document nodes are unwrapped.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// ensureMapping returns the mapping under key, creating or replacing it.
func ensureMapping(node *yaml.Node, key string) *yaml.Node {
	if child := findMapValue(node, key); child != nil {
		if child.Kind != yaml.MappingNode {
			*child = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		}
		return child
	}
	child := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		child)
	return child
}

// setScalar sets key to value, keeping any comments on an existing value.
func setScalar(node *yaml.Node, key, value string) {
	if existing := findMapValue(node, key); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = ""
		existing.Style = 0
		existing.Content = nil
		existing.Value = value
		return
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value})
}
