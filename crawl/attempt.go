package crawl

import (
	"context"

	"github.com/fwojciec/shopcrawl"
)

// Outcome classifies the result of a single fetch attempt.
type Outcome int

const (
	// OutcomeSuccess means the attempt produced usable HTML.
	OutcomeSuccess Outcome = iota
	// OutcomeRetryable means this strategy failed but another may succeed.
	OutcomeRetryable
	// OutcomeFatal means further attempts are pointless, for example when
	// the URL is malformed or the session is canceled.
	OutcomeFatal
)

// Attempt is one named fetch strategy in a ranked plan.
type Attempt struct {
	Name    string
	Fetcher shopcrawl.Fetcher
}

// Plan is an explicitly ordered list of fetch strategies. Fetch walks the
// list until one attempt succeeds or an attempt fails fatally, so a broken
// rendering path can still fall back to a plain HTTP fetch.
type Plan struct {
	attempts []Attempt
}

// NewPlan creates a Plan from the given attempts, tried in order.
func NewPlan(attempts ...Attempt) *Plan {
	return &Plan{attempts: attempts}
}

// Fetch runs the plan for a URL. It returns the first successful result, or
// the last attempt's error when every strategy fails.
func (p *Plan) Fetch(ctx context.Context, url string) (*shopcrawl.FetchResult, string, error) {
	var lastErr error
	for _, a := range p.attempts {
		res, err := a.Fetcher.Fetch(ctx, url)
		switch Classify(ctx, err) {
		case OutcomeSuccess:
			return res, a.Name, nil
		case OutcomeFatal:
			return nil, a.Name, err
		default:
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = shopcrawl.Errorf(shopcrawl.EINTERNAL, "fetch plan has no attempts")
	}
	return nil, "", lastErr
}

// Classify maps a fetch error to an attempt outcome. Context cancellation
// is fatal: when the session budget is gone, trying another strategy only
// burns more of it. Invalid input is fatal for the same reason. Everything
// else is worth handing to the next strategy.
func Classify(ctx context.Context, err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	if ctx.Err() != nil {
		return OutcomeFatal
	}
	if shopcrawl.ErrorCode(err) == shopcrawl.EINVALID {
		return OutcomeFatal
	}
	return OutcomeRetryable
}
