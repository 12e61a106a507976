package news

import "fmt"

// ProviderError reports an upstream failure. Status is the HTTP status the
// provider answered with, or 0 when the request got no response at all.
type ProviderError struct {
	Status  int
	Message string
	Details string
}

func (e *ProviderError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}
