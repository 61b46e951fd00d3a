package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/robfig/soyc/soyjs"
)

const tomlConfig = `
inputs = ["views", "/abs/extra.soy"]
output = "out/templates.js"
known_types = ["my.Global"]
locale = "de"
messages = "msgs"

[log]
level = "debug"
format = "json"
`

const yamlConfig = `
inputs:
  - views
  - /abs/extra.soy
output: out/templates.js
known_types: [my.Global]
locale: de
messages: msgs
log:
  level: debug
  format: json
`

func TestLoad(t *testing.T) {
	var dir = t.TempDir()
	var expected = &Config{
		Inputs:     []string{filepath.Join(dir, "views"), "/abs/extra.soy"},
		Output:     "out/templates.js",
		KnownTypes: []string{"my.Global"},
		ForEach:    soyjs.DefaultForEach,
		Locale:     "de",
		Messages:   filepath.Join(dir, "msgs"),
		Log:        LogConfig{Level: "debug", Format: "json"},
	}

	for name, content := range map[string]string{
		"soyc.toml": tomlConfig,
		"soyc.yaml": yamlConfig,
		"soyc.yml":  yamlConfig,
	} {
		var path = filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		var actual, err = Load(path)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", name, diff)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error")
	}
}

func TestDefault(t *testing.T) {
	var cfg = Default()
	if cfg.ForEach != soyjs.DefaultForEach || cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected defaults: %#v", cfg)
	}
	var opts = cfg.CompilerOptions()
	if opts.ForEach != soyjs.DefaultForEach || opts.KnownTypes != nil {
		t.Errorf("unexpected options: %#v", opts)
	}
}

func TestDetectFormat(t *testing.T) {
	var tests = []struct {
		path string
		fmt  Format
	}{
		{"a.toml", FormatTOML},
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"a.conf", FormatTOML},
	}
	for _, test := range tests {
		if actual := DetectFormat(test.path); actual != test.fmt {
			t.Errorf("%s: expected %v, got %v", test.path, test.fmt, actual)
		}
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []struct {
		content string
		format  Format
		err     string
	}{
		{`inputs = [`, FormatTOML, "TOML parse error"},
		{"inputs: [\n", FormatYAML, "YAML parse error"},
		{``, Format(9), "unsupported format"},
	}
	for _, test := range tests {
		var _, err = Parse([]byte(test.content), test.format)
		if err == nil || !strings.Contains(err.Error(), test.err) {
			t.Errorf("%q: expected error containing %q, got %v", test.content, test.err, err)
		}
	}
}

func TestValidate(t *testing.T) {
	var tests = []struct {
		content string
		format  Format
		err     string
	}{
		{`locale = "de"`, FormatTOML, "requires a messages directory"},
		{"[log]\nlevel = \"loud\"", FormatTOML, "unknown log level"},
		{"log:\n  format: xml", FormatYAML, "unknown log format"},
		{"locale = \"de\"\nmessages = \"msgs\"", FormatTOML, ""},
	}
	for _, test := range tests {
		var cfg, err = Parse([]byte(test.content), test.format)
		if err != nil {
			t.Errorf("%q: parsing must not validate, got %v", test.content, err)
			continue
		}
		err = cfg.Validate()
		switch {
		case test.err == "" && err != nil:
			t.Errorf("%q: unexpected error %v", test.content, err)
		case test.err != "" && (err == nil || !strings.Contains(err.Error(), test.err)):
			t.Errorf("%q: expected error containing %q, got %v", test.content, test.err, err)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var cfg = Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	var log, err = cfg.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Info("hidden")
	log.Warn("shown", "file", "a.soy")
	var out = buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered: %s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"file":"a.soy"`) {
		t.Errorf("expected a json record: %s", out)
	}
}
