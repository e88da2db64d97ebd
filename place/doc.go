// SPDX-License-Identifier: EPL-2.0

// Package place resolves placement policies into concrete start times
// on the export timeline.
//
// The Resolver consumes a scene.Snapshot and produces one Placed record
// per source. Random policies draw from an injected rand source, so a
// fixed seed always yields the same placements:
//
//	resolver := place.NewResolver(rand.New(rand.NewSource(1)))
//	placed, err := resolver.Resolve(snapshot)
//
// Closest-approach placement scans the camera and source trajectories
// at every keyed time of either and triggers the source on the instant
// of minimal distance, ties broken toward the earliest time.
package place
