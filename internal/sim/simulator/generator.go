// Copyright (c) 2025 The pmstats Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simulator

import (
	"errors"
	"fmt"

	"github.com/gwtelemetry/pmstats/internal/sim/config"
	"github.com/gwtelemetry/pmstats/internal/sim/trace/generator"
)

func newGenerator(cfg config.Config) (traceGenerator, error) {
	switch cfg.Type {
	case generator.FleetType:
		return generator.NewFleet(cfg.Fleet.Params(), cfg.Limit), nil
	case generator.FileType:
		traceGenerator, err := generator.NewFile(cfg.File.Path, cfg.File.TraceType, cfg.Limit)
		if err != nil {
			return nil, fmt.Errorf("create trace generator from file: %w", err)
		}
		return traceGenerator, nil
	default:
		return nil, errors.New("unknown trace type")
	}
}
