// Package resilience groups fault tolerance patterns for calls that leave the
// process. The briefing proxy performs no retries; the only pattern in use is a
// circuit breaker around the text-generation provider, so that a provider
// outage fails requests fast instead of holding each one for the full timeout.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.GeneratorConfig("claude-api"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callProvider()
//	})
package resilience
