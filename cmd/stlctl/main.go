// Command stlctl exercises the stlkit containers from the command line.
package main

func main() {
	execute()
}
