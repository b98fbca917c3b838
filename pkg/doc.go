// Package pkg provides the libraries behind githot, a board of trending
// GitHub repositories and users.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [integrations] - HTTP client shared by API clients, and the GitHub search client
//  2. [refresh] - The repository and user flows, the fan-out join and the scheduler
//  3. [board] - Fixed-slot display tables fed by the flows
//  4. [errors] - Error codes and typed errors for every failure category
//  5. [observability] - Hooks for refresh cycles and outbound HTTP calls
//
// # Architecture
//
// One refresh cycle flows through the packages like this:
//
//	refresh.Orchestrator (date-bounded query)
//	         ↓
//	github.Client (merge params → build URL)
//	         ↓
//	integrations.Client (GET, status check, JSON decode)
//	         ↓
//	board.Board (first n slots replaced)
//
// # Quick Start
//
//	cfg, err := github.NewConfig(github.DefaultBaseURL, github.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	client, err := github.NewClient(cfg)
//	if err != nil {
//	    return err
//	}
//
//	b := board.New(board.DefaultRows)
//	o := refresh.New(client, b)
//	if err := o.RefreshAll(ctx); err != nil {
//	    return err
//	}
//	for _, r := range b.Repos() {
//	    fmt.Println(r.FullName, r.Stars)
//	}
package pkg
