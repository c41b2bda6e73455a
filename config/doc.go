// Package config holds the runtime settings of the topsis CLI.
//
// Settings resolve in three layers, later layers winning:
//
//  1. Default()                 — built-in defaults
//  2. YAML file (--config)      — only the keys present are overridden
//  3. command-line flags        — only flags the user actually set
//
// Example file:
//
//	input:
//	  delimiter: ","
//	  encoding: iso-8859-1
//	  sheet: ""
//	output:
//	  delimiter: ","
//	  score_column: TOPSIS Score
//	  rank_column: Rank
//	  precision: -1
//	scoring:
//	  policy: strict       # strict | permissive
//	log:
//	  level: info
//	  format: console      # console | json
package config
