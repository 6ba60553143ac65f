// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

type Config struct {
	Type               string                    `yaml:"type"` // fixed 或 exponential
	FixedInterval      *FixedIntervalConfig      `yaml:"fixedInterval"`
	ExponentialBackoff *ExponentialBackoffConfig `yaml:"exponentialBackoff"`
}

type ExponentialBackoffConfig struct {
	// 初始重试间隔 单位ms
	InitialInterval int `yaml:"initialInterval"`
	// 最大重试间隔 单位ms
	MaxInterval int `yaml:"maxInterval"`
	// 最大重试次数
	MaxRetries int32 `yaml:"maxRetries"`
}

type FixedIntervalConfig struct {
	MaxRetries int32 `yaml:"maxRetries"`
	// 单位ms
	Interval int `yaml:"interval"`
}

func NewRetry(cfg Config) (retry.Strategy, error) {
	switch cfg.Type {
	case "fixed":
		if cfg.FixedInterval == nil {
			return nil, fmt.Errorf("fixed retry config is missing")
		}
		return retry.NewFixedIntervalRetryStrategy(msToDuration(cfg.FixedInterval.Interval), cfg.FixedInterval.MaxRetries)
	case "exponential":
		if cfg.ExponentialBackoff == nil {
			return nil, fmt.Errorf("exponential retry config is missing")
		}
		return retry.NewExponentialBackoffRetryStrategy(msToDuration(cfg.ExponentialBackoff.InitialInterval),
			msToDuration(cfg.ExponentialBackoff.MaxInterval), cfg.ExponentialBackoff.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown retry type: %s", cfg.Type)
	}
}

// Do 执行 fn 直到成功、重试次数耗尽或 ctx 结束，返回最后一次的错误
func Do(ctx context.Context, s retry.Strategy, fn func() error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := fn()
		if err == nil {
			return nil
		}
		interval, ok := s.Next()
		if !ok {
			return err
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
