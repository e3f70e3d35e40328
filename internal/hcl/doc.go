// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for file parsing, expression evaluation and
// normalizing every cty value of a DFA document into the strings the
// format-agnostic model expects.
//
// A document is a flat set of attributes:
//
//	description  = "odd number of a's"
//	states       = [1, 2]
//	alphabet     = ["a", "b"]
//	start_state  = 1
//	final_states = [2]
//	transitions = {
//	  "1" = { a = 2, b = 1 }
//	  "2" = { a = 1, b = 2 }
//	}
package hcl
