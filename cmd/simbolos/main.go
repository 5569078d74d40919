// Package main provides the simbolos CLI: a local-first AAC symbol board
// over an embedded SQLite store.
package main

func main() {
	Execute()
}
