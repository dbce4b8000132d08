package collegesite

import (
	"errors"

	"noticewatch/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("noticewatch.lib.scrapers.collegesite")

// ErrFetch wraps network failures and unexpected statuses from the
// college website.
var ErrFetch = errors.New("fetch failed")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables http message dumps for clients
// created after the call.
func SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyInstrumentOutput = out
}
