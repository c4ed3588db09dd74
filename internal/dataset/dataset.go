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

// Package dataset loads the YAML inputs of the gdxselect command.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/biffbaff64/LibGDXSharp-sub001/ranked"
	"gopkg.in/yaml.v3"
)

var ErrEmptyDataset = errors.New("dataset has no numbers, strings or entities")

// Entity is a named thing on the map.
type Entity struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

func (e Entity) Position() ranked.Point[float64] {
	return ranked.Point[float64]{X: e.X, Y: e.Y}
}

func (e Entity) Key() string {
	return e.Name
}

type Origin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Dataset struct {
	Numbers  []float64 `yaml:"numbers"`
	Strings  []string  `yaml:"strings"`
	Entities []Entity  `yaml:"entities"`
	Origin   Origin    `yaml:"origin"`
}

func (d *Dataset) OriginPoint() ranked.Point[float64] {
	return ranked.Point[float64]{X: d.Origin.X, Y: d.Origin.Y}
}

// Load reads and validates a dataset file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(d.Numbers) == 0 && len(d.Strings) == 0 && len(d.Entities) == 0 {
		return nil, ErrEmptyDataset
	}
	for i, e := range d.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("entity %d has no name", i)
		}
	}
	return &d, nil
}
