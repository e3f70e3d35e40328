// Package render draws a DFA as a Graphviz DOT or Mermaid state diagram.
//
// Both renderers mark the start state with an incoming arrow from an
// unlabeled point, draw accepting states distinctly, and merge parallel
// edges between the same pair of states into one edge whose label lists the
// symbols in declaration order.
package render
