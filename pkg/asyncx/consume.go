package asyncx

import (
	"context"
	"sync/atomic"

	"github.com/Abraxas-365/corekit/pkg/logx"
)

// log is this module's logger. Replaceable so callers can route the
// absorbed-failure reports into their own observability setup.
var log atomic.Pointer[logx.Logger]

func init() {
	log.Store(logx.Named("asyncx"))
}

// SetLogger replaces the logger used to report absorbed failures.
func SetLogger(logger *logx.Logger) {
	if logger == nil {
		logger = logx.NewNopLogger()
	}
	log.Store(logger)
}

// Consume blocks until f settles and, on success, passes the value to
// consume exactly once.
//
// This is a best-effort helper: any failure of the future is logged at warn
// level and absorbed. The consumer is skipped and nothing is reported back.
// Never use it on a path whose correctness depends on the value arriving.
func Consume[T any](f *Future[T], consume func(T)) {
	v, err := f.Await()
	if err != nil {
		log.Load().WithError(err).WithField("future_id", f.ID()).
			Warn("dropping failed future result")
		return
	}
	consume(v)
}

// ConsumeCtx is Consume with a bounded wait: if ctx is done before the
// future settles, the cancellation is absorbed the same way a computation
// failure is, and the consumer is never invoked.
func ConsumeCtx[T any](ctx context.Context, f *Future[T], consume func(T)) {
	v, err := f.AwaitCtx(ctx)
	if err != nil {
		log.Load().WithError(err).WithField("future_id", f.ID()).
			Warn("dropping failed future result")
		return
	}
	consume(v)
}
