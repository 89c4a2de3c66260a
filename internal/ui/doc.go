// Package ui implements an interactive terminal browser for the package catalog using bubbletea's Elm architecture.
//
// The TUI has three views:
//  1. [ListView] : One page of packages with paging, sort and filter keys
//  2. [SearchView] : Edit the search query
//  3. [DetailView] : All fields of the selected package
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Every navigation key mutates the query state and issues one load through a [Loader], which is the same
// refresh-then-list flow used by the web page. A page that arrives after the state has moved on is dropped.
//
// Keyboard navigation: n/p page, s cycles the sort key, m toggles the Microsoft filter, r refreshes the catalog,
// / searches, enter shows details and q quits. Help is displayed via charmbracelet/bubbles/help.
package ui
