// Package models defines the data types shared by every surface of wgx.
//
// The package contains two categories of types:
//
// 1. Request state: what the caller asked for
//   - [QueryState] : normalized page, page size, sort and filter parameters
//   - [Sort] : the sort keys accepted by the package API
//
// 2. Upstream data: what the package API answered
//   - [Package] : a single catalog entry, every field optional
//   - [Listing] : one page of packages plus totals, as sent by the API
//   - [RefreshResponse] : the raw body of the refresh endpoint
//   - [RefreshOutcome] : the user facing result of a refresh
//
// Listing and Package carry JSON tags matching the wire format of the API,
// which uses capitalised envelope keys and snake_case package keys.
package models
