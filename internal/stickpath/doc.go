/*
Package stickpath parses and solves stick-path (Amidakuji) ladder diagrams.

A diagram is a block of text whose first and last rows hold one label per
lane and whose rows in between draw the lanes as "|" with optional "--"
rungs joining neighbours:

	A  B  C
	|  |  |
	|--|  |
	|  |--|
	1  2  3

Basic flow:
  - validate the text into an immutable Grid (`ParseGrid`)
  - check declared dimensions (`Accept` / `CheckDimensions`)
  - trace every lane (`SolveAll`) and render the pairs (`Results`)

Validation stops at the first violated constraint and returns a
*ValidationError whose Kind names it; use errors.Is with the Err* sentinels
or KindOf to inspect it.
*/
package stickpath
