// Command waypath loads a scene file and runs path searches in it.
//
//	waypath search  --scene labyrinth.yaml --algorithm bfs
//	waypath compare --scene labyrinth.yaml
//	waypath nearest --scene outpost.yaml --x 4 --y 0 --z 6
package main

import (
	"context"
	"os"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
