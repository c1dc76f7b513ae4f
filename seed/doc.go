// Package seed provides the fixed dataset installed onto a session the first
// time a store is constructed over it, plus a YAML loader for alternate
// datasets. Loading happens at composition time; the store itself never
// performs I/O.
//
// Seed files use the natural YAML shape of the domain:
//
//	- id: 1
//	  title: Groceries
//	  todos:
//	    - id: 1
//	      title: Milk
//	      done: false
//
// Loaded datasets are validated (positive unique list ids, unique non-empty
// titles, per-list unique todo ids) before they are handed to a session.
package seed
