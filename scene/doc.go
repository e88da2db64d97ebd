// SPDX-License-Identifier: EPL-2.0

// Package scene holds the input contract of the ADM exporter.
//
// A Snapshot is an immutable description of everything the exporter
// needs: the sound sources with their mono PCM audio, a trajectory for
// each source, a trajectory for the camera (the moving reference
// point), and the global export settings. Snapshots are produced by an
// upstream authoring layer; the exporter never mutates one.
//
// # Coordinates
//
// Positions are cartesian, relative to the listener at the origin.
// RoomNorm projects a position onto the walls of a cube shaped room
// centered on the listener, which is the convention the Pro Tools /
// Dolby Atmos workflow expects ("cartesian allocentric coordinates" in
// ADM terms).
//
// # Placement
//
// Each source carries a PlacementPolicy that decides where on the
// shared timeline its audio starts:
//
//	AtStart                     play on the first frame
//	RandomStart                 uniformly random start time
//	RandomGaussianStart         gaussian around the timeline midpoint
//	ClosestApproachToReference  play when nearest to the camera
//
// The policies are resolved into concrete start offsets by the place
// package.
package scene
