// Package reducers contains the concrete Reducers of Fold: a JSON-array joiner, a
// deduplicating set builder, a grouping reducer, and a handful of smaller reducers
// (string joining, counting, summing, composition).
package reducers
