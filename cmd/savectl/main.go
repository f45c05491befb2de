// Command savectl inspects and edits game save files.
package main

func main() {
	execute()
}
