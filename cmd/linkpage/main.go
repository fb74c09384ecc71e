// Package main provides the linkpage CLI for rendering and serving link pages.
package main

func main() {
	Execute()
}
