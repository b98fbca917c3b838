// Package integrations provides the shared HTTP layer for REST API clients.
//
// # Overview
//
// [Client] issues read-only GET requests and turns every outcome into either
// decoded JSON or one categorized error:
//
//   - non-2xx status: [errors.HTTPError] with the status code and reason phrase;
//     the body is closed unread
//   - malformed body: [errors.DecodeError]
//   - transport failure: [errors.Error] with code NETWORK_ERROR
//
// There is no retry and no response caching. A single failed attempt is
// reported upward immediately and the caller decides what to do with it.
//
// # Client Pattern
//
// API-specific clients embed [Client] and supply their default headers:
//
//	base := integrations.NewClient(map[string]string{
//	    "Accept": "application/vnd.github.mercy-preview+json",
//	})
//	var out struct{ Items []json.RawMessage `json:"items"` }
//	err := base.Get(ctx, url, &out)
//
// Every request reports to the [observability.HTTP] hooks.
//
// # Subpackages
//
//   - [github]: GitHub search and resource fetch
//
// [errors.HTTPError]: github.com/matzehuels/githot/pkg/errors.HTTPError
// [errors.DecodeError]: github.com/matzehuels/githot/pkg/errors.DecodeError
// [errors.Error]: github.com/matzehuels/githot/pkg/errors.Error
// [observability.HTTP]: github.com/matzehuels/githot/pkg/observability.HTTP
// [github]: github.com/matzehuels/githot/pkg/integrations/github
package integrations
