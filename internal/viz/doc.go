// Package viz is the terminal plotting sink. It consumes labelled
// (x, y) series from the sweep package and knows nothing about the
// material model beyond what [Watch] needs to step it live.
package viz
