// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/relgraph/betting"
	"github.com/katalvlaran/relgraph/converters"
	"github.com/katalvlaran/relgraph/pipeline"
	"github.com/katalvlaran/relgraph/raster"
)

// Setting keys. Environment variables use the RELGRAPH_ prefix with dots
// replaced by underscores (log.level -> RELGRAPH_LOG_LEVEL).
const (
	KeyConfigFile  = "config"
	KeyInput       = "input"
	KeyOutputDir   = "output.dir"
	KeyFormat      = "output.format"
	KeyCaption     = "output.caption"
	KeyMaxWidth    = "output.max_width"
	KeyGraphviz    = "graphviz.binary"
	KeyEntities    = "entities"
	KeyVariations  = "variations"
	KeyConcurrency = "concurrency"
	KeyDebounce    = "watch.debounce"
	KeyListen      = "serve.listen"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyDOTGraph    = "dot.graph"
	KeyDOTNode     = "dot.node"
	KeyDOTEdge     = "dot.edge"

	KeyScoreUsers   = "score.users"
	KeyScoreDue     = "score.due"
	KeyScoreMethods = "score.methods"
)

// EnvPrefix prefixes every environment variable viper binds.
const EnvPrefix = "RELGRAPH"

// Output formats that need no Graphviz binary.
const (
	FormatDOT  = pipeline.FormatDOT
	FormatJSON = pipeline.FormatJSON
)

// Config is the resolved runtime configuration.
type Config struct {
	Input          string
	OutputDir      string
	Format         string
	Caption        bool
	MaxWidth       int // captioned PNGs wider than this are downsampled; 0 keeps them
	Graphviz       string
	Entities       []string
	VariationsFile string
	Concurrency    int
	Debounce       time.Duration
	Listen         string
	Log            LogConfig
	DOT            DOTConfig
	Score          ScoreConfig
}

// ScoreConfig drives the score command.
type ScoreConfig struct {
	Users   []string         // estimate columns, in order
	Due     time.Time        // zero: every due date
	Methods []betting.Method // one rendering per method
}

// DOTConfig holds extra Graphviz attributes for every encoded graph. In a
// config file each is a mapping; flags and environment variables take
// "key=value,key=value".
type DOTConfig struct {
	Graph map[string]string
	Node  map[string]string
	Edge  map[string]string
}

// Options turns the attributes into encoder options, keys in sorted order.
func (d DOTConfig) Options() []converters.Option {
	var opts []converters.Option
	for _, k := range sortedKeys(d.Graph) {
		opts = append(opts, converters.WithGraphAttr(k, d.Graph[k]))
	}
	for _, k := range sortedKeys(d.Node) {
		opts = append(opts, converters.WithNodeAttr(k, d.Node[k]))
	}
	for _, k := range sortedKeys(d.Edge) {
		opts = append(opts, converters.WithEdgeAttr(k, d.Edge[k]))
	}

	return opts
}

func (d DOTConfig) validate() error {
	for scope, attrs := range map[string]map[string]string{"graph": d.Graph, "node": d.Node, "edge": d.Edge} {
		if _, ok := attrs[""]; ok {
			return fmt.Errorf("%w: empty dot %s attribute key", ErrInvalidConfig, scope)
		}
	}

	return nil
}

// LogConfig selects the root logger's level and encoding.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console, json
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyInput, "-")
	v.SetDefault(KeyOutputDir, "graph_variations")
	v.SetDefault(KeyFormat, FormatDOT)
	v.SetDefault(KeyCaption, true)
	v.SetDefault(KeyMaxWidth, 0)
	v.SetDefault(KeyGraphviz, raster.DefaultBinary)
	v.SetDefault(KeyEntities, []string{})
	v.SetDefault(KeyVariations, "")
	v.SetDefault(KeyConcurrency, 1)
	v.SetDefault(KeyDebounce, 200*time.Millisecond)
	v.SetDefault(KeyListen, ":8080")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyScoreUsers, betting.DefaultUsers)
	v.SetDefault(KeyScoreDue, "")
	v.SetDefault(KeyScoreMethods, methodNames(betting.Methods()))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file (KeyConfigFile, else ./relgraph.yaml)
// into v and returns the validated Config.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("relgraph")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read relgraph.yaml: %w", err)
			}
		}
	}

	var dot DOTConfig
	for _, a := range []struct {
		key string
		dst *map[string]string
	}{{KeyDOTGraph, &dot.Graph}, {KeyDOTNode, &dot.Node}, {KeyDOTEdge, &dot.Edge}} {
		attrs, err := attrMap(v.Get(a.key))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, a.key, err)
		}
		*a.dst = attrs
	}

	score, err := loadScore(v)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		Input:          v.GetString(KeyInput),
		OutputDir:      v.GetString(KeyOutputDir),
		Format:         strings.ToLower(v.GetString(KeyFormat)),
		Caption:        v.GetBool(KeyCaption),
		MaxWidth:       v.GetInt(KeyMaxWidth),
		Graphviz:       v.GetString(KeyGraphviz),
		Entities:       splitList(v.GetStringSlice(KeyEntities)),
		VariationsFile: v.GetString(KeyVariations),
		Concurrency:    v.GetInt(KeyConcurrency),
		Debounce:       v.GetDuration(KeyDebounce),
		Listen:         v.GetString(KeyListen),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
		DOT:   dot,
		Score: score,
	}

	return c, c.Validate()
}

// Validate checks formats and numeric ranges.
func (c Config) Validate() error {
	if !IsOutputFormat(c.Format) {
		return fmt.Errorf("%w: output format %q", ErrInvalidConfig, c.Format)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d < 1", ErrInvalidConfig, c.Concurrency)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: negative watch debounce %s", ErrInvalidConfig, c.Debounce)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: negative max width %d", ErrInvalidConfig, c.MaxWidth)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: empty output dir", ErrInvalidConfig)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if len(c.Score.Users) == 0 || len(c.Score.Methods) == 0 {
		return fmt.Errorf("%w: score needs users and methods", ErrInvalidConfig)
	}

	return c.DOT.validate()
}

// IsOutputFormat reports whether f is dot, json or a Graphviz format.
func IsOutputFormat(f string) bool {
	return pipeline.IsFormat(f)
}

// splitList accepts both repeated values and comma-separated env strings.
func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// attrMap reads an attribute set given either as a mapping or as a
// "key=value,key=value" string.
func attrMap(raw any) (map[string]string, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, v := range t {
			out[k] = v
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(t))
		for k, v := range t {
			out[k] = fmt.Sprint(v)
		}
		return out, nil
	case string:
		out := make(map[string]string)
		for _, pair := range splitList([]string{t}) {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("attribute %q is not key=value", pair)
			}
			out[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported attribute set %T", raw)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func loadScore(v *viper.Viper) (ScoreConfig, error) {
	sc := ScoreConfig{Users: splitList(v.GetStringSlice(KeyScoreUsers))}
	if due := strings.TrimSpace(v.GetString(KeyScoreDue)); due != "" {
		d, err := betting.ParseDate(due)
		if err != nil {
			return ScoreConfig{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyScoreDue, err)
		}
		sc.Due = d
	}
	for _, name := range splitList(v.GetStringSlice(KeyScoreMethods)) {
		m, err := betting.ParseMethod(name)
		if err != nil {
			return ScoreConfig{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KeyScoreMethods, err)
		}
		sc.Methods = append(sc.Methods, m)
	}

	return sc, nil
}

func methodNames(ms []betting.Method) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}

	return out
}
