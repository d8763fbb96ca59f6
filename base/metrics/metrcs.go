/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Noop / discarded work: *.noop, *.stale
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/marketclient/base/env"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"

	defaultSampleRate = 1.0
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// default: true
	withPodName bool
}

// WithoutPodName drops the pod tag from every metric sent by the Service
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client with package name as prefix
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// an empty host tag removes the agent's host tags
		"host:",
		"env:" + firstNonEmpty(viper.GetString("env_name"), env.EnvName()),
		"app:" + firstNonEmpty(viper.GetString("app_name"), env.AppName()),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return TagValueNA
}

// Metrics prefixes every key with the package name and never lets a
// metrics failure escape to the caller.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// bumpSumPanic counts panics raised inside the metric client itself
func (mt *Metrics) bumpSumPanic(key string, tags []string) {
	mt.datadog.BumpSum("metrics.panic", 1, defaultSampleRate, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpAvg(mt.key(key), val, defaultSampleRate, tags...)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpSum(mt.key(key), val, defaultSampleRate, tags...)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpHistogram(mt.key(key), val, defaultSampleRate, tags...)
}

// BumpTime is a special version of BumpHistogram which is specialized for
// timers. A convenient way of recording the duration of a function:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	var ddEnd Ender = &fakeEnd{}
	func() {
		defer func() {
			if err := recover(); err != nil {
				mt.bumpSumPanic(key, tags)
			}
		}()
		ddEnd = mt.datadog.BumpTime(mt.key(key), defaultSampleRate, tags...)
	}()

	return &timeTracker{
		ddEnd: ddEnd,
		panicHandler: func() {
			mt.bumpSumPanic(key, tags)
		},
	}
}

type fakeEnd struct{}

func (e *fakeEnd) End() {}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
