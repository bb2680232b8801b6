// Package resolver implements the timezone search engine on top of any
// tzsearch.RulesProvider.
//
// A Resolver narrows the provider's zone universe through a constraint set at
// an anchor wall-clock time, clusters the survivors by their (offset,
// abbreviation) pair, and classifies the outcome:
//
//   - exactly one surviving zone: a unique, always-valid resolution
//   - one cluster with several zones: a single-instant resolution, only valid
//     at the anchor
//   - several clusters: AmbiguousTimezoneError, or the first cluster in
//     candidate order when the search runs unsafe
//   - no survivors: NoZoneFoundError
//
// Resolvers memoize the narrowing stages in an instance-scoped cache and are
// therefore NOT safe for concurrent use; Pool provisions one per caller.
//
// Observability follows the dependency-free interface pattern of the tzsearch
// package: plug in a Logger, MetricsCollector, TracingCollector, or
// ContextualLogger via functional options, or use the oteladapters module.
package resolver
