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

// Package scripting lets game data define orderings in Lua.
package scripting

import (
	"fmt"
	"sync"

	"github.com/biffbaff64/LibGDXSharp-sub001/comparator"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM. Comparators obtained from it share the
// VM, so calls are serialized by mu.
type Engine struct {
	mu  sync.Mutex
	vm  *lua.LState
	log *zap.Logger
	err error // first failed call
}

func NewEngine(log *zap.Logger) *Engine {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", path))
	return nil
}

func (e *Engine) LoadString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.vm.DoString(src); err != nil {
		return fmt.Errorf("load lua chunk: %w", err)
	}
	return nil
}

func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vm.Close()
}

// Err reports the first error raised by a comparator call, if any. A
// selection run with a failing comparator still finishes, but its result
// cannot be trusted when Err is non-nil.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Float64Comparator orders numbers with the global Lua function name. The
// function receives (a, b) and returns either a number (<0, 0, >0) or a
// boolean meaning "a comes before b".
func (e *Engine) Float64Comparator(name string) (comparator.Func[float64], error) {
	fn, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	return func(a, b float64) int {
		return e.compare(name, fn, lua.LNumber(a), lua.LNumber(b))
	}, nil
}

// StringComparator is Float64Comparator for strings.
func (e *Engine) StringComparator(name string) (comparator.Func[string], error) {
	fn, err := e.lookup(name)
	if err != nil {
		return nil, err
	}
	return func(a, b string) int {
		return e.compare(name, fn, lua.LString(a), lua.LString(b))
	}, nil
}

func (e *Engine) lookup(name string) (lua.LValue, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn := e.vm.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("lua function %s not found", name)
	}
	return fn, nil
}

func (e *Engine) compare(name string, fn lua.LValue, a, b lua.LValue) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	ret, err := e.call(fn, a, b)
	if err != nil {
		e.fail(name, err)
		return 0
	}
	switch v := ret.(type) {
	case lua.LNumber:
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	case lua.LBool:
		if v {
			return -1
		}
		ret, err = e.call(fn, b, a)
		if err != nil {
			e.fail(name, err)
			return 0
		}
		if lua.LVAsBool(ret) {
			return 1
		}
		return 0
	}
	e.fail(name, fmt.Errorf("returned %s, want number or boolean", ret.Type()))
	return 0
}

func (e *Engine) call(fn lua.LValue, a, b lua.LValue) (lua.LValue, error) {
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, a, b); err != nil {
		return nil, err
	}
	ret := e.vm.Get(-1)
	e.vm.Pop(1)
	return ret, nil
}

func (e *Engine) fail(name string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("lua %s: %w", name, err)
	}
	e.log.Error("lua compare error", zap.String("function", name), zap.Error(err))
}
