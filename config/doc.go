// Package config decodes maze scenarios from YAML.
//
// A Scenario either carries an inline layout in the grid text format or
// describes a bordered maze by size, optionally scattering interior walls
// from a seed. It also names the strategy, metric and step budget that a
// front end should run with.
//
//	name: detour
//	layout: |
//	  #######
//	  #A    #
//	  # ### #
//	  #    B#
//	  #######
//	strategy: astar
//	metric: manhattan
//	budget: 10
//
// Generated mazes:
//
//	width: 40
//	height: 20
//	density: 0.3
//	seed: 7
//	trials: 25
//	strategy: all
//
// A layout scenario must not also set width, height, start, goal, density
// or seed.
//
// Load applies defaults before decoding, then validates. Fields left out of
// the document keep their defaults.
package config
