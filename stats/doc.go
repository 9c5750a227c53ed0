// Package stats computes the descriptive statistics shown for a filtered
// RecordSet: popular times, popular stations and routes, trip durations and
// rider demographics.
//
// Every aggregator is a pure read of its input and may run in any order. Each
// returns an *EmptyDatasetError when handed zero records.
//
// Modes break ties deterministically by choosing the lowest value in natural
// order (months and hours numerically, names lexically), so results never
// depend on row order.
package stats
