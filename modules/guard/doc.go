// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package guard simulates a guard patrolling a grid. The guard walks straight
// ahead and turns right whenever the next cell is blocked, until it steps off
// the map. Part 1 counts the cells covered by one patrol; part 2 counts the
// cells where a single extra obstacle would trap the guard in a loop.
package guard
