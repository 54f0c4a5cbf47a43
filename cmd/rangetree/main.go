// Command rangetree answers dominance counting queries from a batch input.
package main

func main() {
	Execute()
}
