// Command bytewin prints a side-by-side hex view of two binary files around
// an offset, marking the bytes that differ.
package main

func main() {
	execute()
}
