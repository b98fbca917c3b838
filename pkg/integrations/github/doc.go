// Package github provides an HTTP client for the GitHub search API.
//
// # Overview
//
// The package turns a search request into a single GET request and decodes the
// result. It has three layers:
//
//   - [MergeParams] combines the reserved search keys (q, sort, order) with
//     process-wide defaults such as page and per_page. Defaults never replace
//     a reserved key, even when the explicit value is empty.
//   - [BuildURL] renders <base>/search/<type>?... with every key and value
//     percent-encoded.
//   - [Client] sends the request with the mercy-preview Accept header and
//     returns typed results or a categorized error.
//
// # Usage
//
//	cfg, err := github.NewConfig(github.DefaultBaseURL, github.DefaultParams())
//	if err != nil {
//	    log.Fatal(err) // CONSTRUCTION_ERROR
//	}
//	client, err := github.NewClient(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.SearchUsers(ctx, "created:>2024-03-15", "followers", github.Desc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range res.Items {
//	    detail, err := client.FetchUser(ctx, u.URL)
//	    // ...
//	}
//
// # Direct Fetch
//
// [Client.Fetch] requests a caller-supplied absolute URL verbatim. It is used
// for the per-user detail URLs that appear in search results and bypasses the
// parameter merge and URL builder.
//
// # Errors
//
// Failures come from [integrations.Client]: HTTPError for non-2xx statuses,
// DecodeError for malformed bodies, NETWORK_ERROR for transport failures.
// Nothing is retried and nothing is cached.
package github
