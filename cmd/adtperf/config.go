// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gu-cpsc223/adt/internal/perf"
)

type MapConfig struct {
	Sizes []int `yaml:"sizes"`
}

type Config struct {
	Start    int       `yaml:"start"`
	Step     int       `yaml:"step"`
	Stop     int       `yaml:"stop"`
	Runs     int       `yaml:"runs"`
	Shuffles int       `yaml:"shuffles"`
	Seed     uint64    `yaml:"seed"`
	Sorts    []string  `yaml:"sorts"`
	Orders   []string  `yaml:"orders"`
	Map      MapConfig `yaml:"map"`
}

func defaultConfig() Config {
	return Config{
		Start:    0,
		Step:     1000,
		Stop:     20000,
		Runs:     1,
		Shuffles: 5,
		Seed:     1,
		Sorts:    []string{"array-quick", "array-merge", "linked-quick", "linked-merge"},
		Orders:   []string{"shuffled", "sorted", "reversed"},
		Map: MapConfig{
			Sizes: []int{1000, 10000, 100000},
		},
	}
}

// loadConfig reads the YAML file at path over the defaults.
// An empty path or a missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Start < 0:
		return errors.Errorf("start must not be negative, got %d", c.Start)
	case c.Step <= 0:
		return errors.Errorf("step must be positive, got %d", c.Step)
	case c.Stop < c.Start:
		return errors.Errorf("stop %d is below start %d", c.Stop, c.Start)
	case c.Runs <= 0:
		return errors.Errorf("runs must be positive, got %d", c.Runs)
	case c.Shuffles < 0:
		return errors.Errorf("shuffles must not be negative, got %d", c.Shuffles)
	}
	if _, err := perf.LookupAlgorithms(c.Sorts); err != nil {
		return err
	}
	if _, err := c.orders(); err != nil {
		return err
	}
	for _, n := range c.Map.Sizes {
		if n < 0 {
			return errors.Errorf("map size must not be negative, got %d", n)
		}
	}
	return nil
}

func (c *Config) orders() ([]perf.Order, error) {
	var orders []perf.Order
	for _, name := range c.Orders {
		o, err := perf.ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// sizes returns start, start+step, ... up to stop.
func (c *Config) sizes() []int {
	var sizes []int
	for n := c.Start; n <= c.Stop; n += c.Step {
		sizes = append(sizes, n)
	}
	return sizes
}
