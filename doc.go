// Package lowpoint answers one question about a height map: walking only
// downhill or level, one orthogonal step at a time, what is the lowest cell
// reachable from a given start?
//
// What is in the module?
//
//	grid/      — immutable rectangular altitude grid, cells and directions
//	lowpoint/  — the search: every maximal non-increasing path, one winner
//	terrain/   — seeded procedural maps for demos, tests and benchmarks
//	gridio/    — YAML/JSON grid documents
//	render/    — text and coloured map output, the result line
//	finder/    — concurrent, cached queries with prometheus metrics
//	config/    — flags, LOWPOINT_* environment, .env and config files
//	cmd/lowpoint — the command-line tool
//
// Choosing a winner:
//
//  1. lowest altitude;
//  2. among equals, the route whose drops are larger at the first step
//     where two routes differ;
//  3. among identical drop sequences, the cell closest to the start
//     (Manhattan distance, or row then column on request);
//  4. otherwise the first route found, scanning left, right, up, down.
//
// Quick example:
//
//	      C0  C1  C2  C3
//	  R0  67  72  93   5
//	  R1  38  53  71  48
//	  R2  64  56  52  44
//	  R3  44  51  57  49
//
//	From R3, C2 (57) three routes reach 44. 57→49→44 drops 8 then 5,
//	beating 57→51→44 (6, 7) and 57→52→44 (5, 8): the answer is R2, C3.
//
// See cmd/lowpoint for the CLI and the lowpoint package for the API.
package lowpoint
