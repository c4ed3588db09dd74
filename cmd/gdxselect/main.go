/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command gdxselect selects order statistics from a YAML dataset.
//
//	gdxselect -data enemies.yaml -kind entities -k 2
//	gdxselect -data scores.yaml -rank 0.9
//	gdxselect -data names.yaml -kind strings -order collate -k 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
	"github.com/biffbaff64/LibGDXSharp-sub001/internal/config"
	"github.com/biffbaff64/LibGDXSharp-sub001/internal/dataset"
	"github.com/biffbaff64/LibGDXSharp-sub001/internal/scripting"
	"github.com/biffbaff64/LibGDXSharp-sub001/ranked"
	"github.com/biffbaff64/LibGDXSharp-sub001/selection"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	kindNumbers  = "numbers"
	kindStrings  = "strings"
	kindEntities = "entities"

	orderNatural = "natural"
	orderReverse = "reverse"
	orderCollate = "collate"
	orderLua     = "lua"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	dataPath   string
	kind       string
	order      string
	pivot      string
	seed       string
	k          int
	rank       float64
	inclusive  string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("gdxselect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file (default $"+config.EnvConfigPath+")")
	fs.StringVar(&opts.dataPath, "data", "", "YAML dataset file")
	fs.StringVar(&opts.kind, "kind", kindNumbers, "numbers, strings or entities")
	fs.StringVar(&opts.order, "order", orderNatural, "natural, reverse, collate or lua")
	fs.StringVar(&opts.pivot, "pivot", "", "pivot strategy, overrides config")
	fs.StringVar(&opts.seed, "seed", "", "pivot and tie-break seed, overrides config")
	fs.IntVar(&opts.k, "k", 0, "1-based rank to select")
	fs.Float64Var(&opts.rank, "rank", -1, "normalized rank in [0,1] to select instead of -k")
	fs.StringVar(&opts.inclusive, "inclusive", "", "true or false, overrides config for -rank")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.dataPath == "" {
		return nil, errors.New("-data is required")
	}
	if opts.k == 0 && opts.rank < 0 {
		return nil, errors.New("one of -k or -rank is required")
	}
	if opts.k != 0 && opts.rank >= 0 {
		return nil, errors.New("-k and -rank are mutually exclusive")
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	// 1. Flags and config
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.ResolvePath(opts.configPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(cfg, opts); err != nil {
		return err
	}

	// 2. Logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Data
	data, err := dataset.Load(opts.dataPath)
	if err != nil {
		return err
	}
	log.Debug("selecting",
		zap.String("kind", opts.kind),
		zap.String("order", opts.order),
		zap.String("pivot", cfg.Selection.Pivot),
		zap.Uint64("seed", cfg.Selection.Seed),
		zap.Int("k", opts.k),
		zap.Float64("rank", opts.rank),
	)

	// 4. Select
	var result string
	switch opts.kind {
	case kindNumbers:
		result, err = selectNumbers(data.Numbers, opts, cfg, log)
	case kindStrings:
		result, err = selectStrings(data.Strings, opts, cfg, log)
	case kindEntities:
		result, err = selectEntities(data, opts, cfg)
	default:
		err = fmt.Errorf("unknown kind %q", opts.kind)
	}
	if err != nil {
		return err
	}
	log.Info("selected", zap.String("kind", opts.kind), zap.String("result", result))
	_, err = fmt.Fprintln(stdout, result)
	return err
}

func applyOverrides(cfg *config.Config, opts *options) error {
	if opts.pivot != "" {
		cfg.Selection.Pivot = opts.pivot
	}
	if opts.seed != "" {
		seed, err := strconv.ParseUint(opts.seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid -seed: %w", err)
		}
		cfg.Selection.Seed = seed
	}
	if opts.inclusive != "" {
		inclusive, err := strconv.ParseBool(opts.inclusive)
		if err != nil {
			return fmt.Errorf("invalid -inclusive: %w", err)
		}
		cfg.Selection.Inclusive = inclusive
	}
	return nil
}

func selectNumbers(values []float64, opts *options, cfg *config.Config, log *zap.Logger) (string, error) {
	var comp comparator.Func[float64]
	scriptErr := noScriptErr
	switch opts.order {
	case orderNatural:
		comp = comparator.Natural[float64]()
	case orderReverse:
		comp = comparator.Reverse(comparator.Natural[float64]())
	case orderLua:
		engine, err := newScriptEngine(cfg.Scripting, log)
		if err != nil {
			return "", err
		}
		defer engine.Close()
		if comp, err = engine.Float64Comparator(cfg.Scripting.Function); err != nil {
			return "", err
		}
		scriptErr = engine.Err
	default:
		return "", fmt.Errorf("order %q does not apply to numbers", opts.order)
	}
	v, err := pick(values, comp, opts, cfg)
	if err != nil {
		return "", err
	}
	if err := scriptErr(); err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

func selectStrings(values []string, opts *options, cfg *config.Config, log *zap.Logger) (string, error) {
	var comp comparator.Func[string]
	scriptErr := noScriptErr
	switch opts.order {
	case orderNatural:
		comp = comparator.Natural[string]()
	case orderReverse:
		comp = comparator.Reverse(comparator.Natural[string]())
	case orderCollate:
		c, err := newCollator(cfg.Collation)
		if err != nil {
			return "", err
		}
		comp = c
	case orderLua:
		engine, err := newScriptEngine(cfg.Scripting, log)
		if err != nil {
			return "", err
		}
		defer engine.Close()
		if comp, err = engine.StringComparator(cfg.Scripting.Function); err != nil {
			return "", err
		}
		scriptErr = engine.Err
	default:
		return "", fmt.Errorf("unknown order %q", opts.order)
	}
	v, err := pick(values, comp, opts, cfg)
	if err != nil {
		return "", err
	}
	if err := scriptErr(); err != nil {
		return "", err
	}
	return v, nil
}

func noScriptErr() error { return nil }

func selectEntities(data *dataset.Dataset, opts *options, cfg *config.Config) (string, error) {
	q, err := ranked.NewQuery(dataset.Entity.Position, data.OriginPoint(),
		ranked.WithTieBreakKey[dataset.Entity, float64](dataset.Entity.Key),
		ranked.WithTieBreakSeed[dataset.Entity, float64](cfg.Selection.Seed))
	if err != nil {
		return "", err
	}
	var comp comparator.Func[dataset.Entity]
	switch opts.order {
	case orderNatural:
		comp = q.Comparator()
	case orderReverse:
		comp = comparator.Reverse(q.Comparator())
	default:
		return "", fmt.Errorf("order %q does not apply to entities", opts.order)
	}
	e, err := pick(data.Entities, comp, opts, cfg)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

func pick[T any](values []T, comp comparator.Func[T], opts *options, cfg *config.Config) (T, error) {
	pivot, err := selection.PivotByName[T](cfg.Selection.Pivot, cfg.Selection.Seed)
	if err != nil {
		var zero T
		return zero, err
	}
	s, err := selection.NewSelector(comp, selection.WithPivot(pivot))
	if err != nil {
		var zero T
		return zero, err
	}
	if opts.rank >= 0 {
		return s.Quantile(values, opts.rank, cfg.Selection.Inclusive)
	}
	return s.Select(values, opts.k, len(values))
}

func newCollator(cfg config.CollationConfig) (comparator.Func[string], error) {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("collation language %q: %w", cfg.Language, err)
	}
	var collateOpts []collate.Option
	if cfg.IgnoreCase {
		collateOpts = append(collateOpts, collate.IgnoreCase)
	}
	if cfg.Numeric {
		collateOpts = append(collateOpts, collate.Numeric)
	}
	return comparator.Collator(tag, collateOpts...), nil
}

func newScriptEngine(cfg config.ScriptingConfig, log *zap.Logger) (*scripting.Engine, error) {
	if cfg.File == "" {
		return nil, errors.New("order lua needs [scripting] file in the config")
	}
	engine := scripting.NewEngine(log)
	if err := engine.LoadFile(cfg.File); err != nil {
		engine.Close()
		return nil, err
	}
	return engine, nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
