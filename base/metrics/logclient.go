package metrics

import (
	"github.com/x-xyz/marketclient/base/log"
)

// logClient writes every metric to the debug log when statsd is off
type logClient struct {
	logger log.Logger
}

func newLogClient() *logClient {
	return &logClient{logger: log.Log()}
}

func (lc *logClient) emit(kind, name string, value interface{}, tags []string) {
	lc.logger.WithFields(log.Fields{"metric": kind, "key": name, "val": value, "tags": tags}).Debug(name)
}

func (lc *logClient) Gauge(name string, value float64, tags []string, _ float64) error {
	lc.emit("gauge", name, value, tags)
	return nil
}

func (lc *logClient) Count(name string, value int64, tags []string, _ float64) error {
	lc.emit("count", name, value, tags)
	return nil
}

func (lc *logClient) Histogram(name string, value float64, tags []string, _ float64) error {
	lc.emit("histogram", name, value, tags)
	return nil
}

func (lc *logClient) TimeInMilliseconds(name string, value float64, tags []string, _ float64) error {
	lc.emit("time_ms", name, value, tags)
	return nil
}
