// Package internal holds the analysis engine for minimalactions.
//
// # Architecture Overview
//
//	                     +------------------+
//	                     |   analyzer.go    |  Entry point, flags, config
//	                     +--------+---------+
//	                              |
//	                     +--------v---------+
//	                     | checker.Checker  |  Orchestration
//	                     +--------+---------+
//	                              |
//	                     +--------v---------+
//	                     |  matcher.Match   |  Is this a Map* call?
//	                     +--------+---------+
//	                              |
//	                     +--------v---------+
//	                     | delegate.Resolve |  Which function is the handler?
//	                     +--------+---------+
//	                              |
//	             +----------------+----------------+
//	             |                                 |
//	     +-------v--------+               +--------v-------+
//	     | binding.Check  |  MA0001       | returns.Check  |  MA0002
//	     +-------+--------+               +--------+-------+
//	             |                                 |
//	             +----------------+----------------+
//	                              |
//	                 +------------v-------------+
//	                 | wellknown.Set, typeutil  |
//	                 +--------------------------+
//
// # Execution Flow
//
//  1. [config.Load] reads the optional TOML file given by -config
//  2. [wellknown.Resolve] looks up the framework types; a package that
//     cannot see them is skipped
//  3. [checker.Checker.Run] walks every call expression with the inspector
//  4. For each call that [matcher.Match] accepts, the handler argument is
//     resolved with [delegate.Resolver.Resolve]
//  5. Enabled checkers inspect the handler and report through
//     [diagnostic.Descriptor.New], unless an ignore directive applies
//
// # Handlers
//
// A handler is either written inline or referenced by name:
//
//	routing.MapGet(app, "/a", func(q mvc.FromQuery[int]) results.Result { ... })
//	routing.MapGet(app, "/b", search)
//	routing.MapGet(app, "/c", h.Search)
//
// Parameters are checked in both cases. Return statements are checked only
// when the body is part of the analyzed package.
package internal
