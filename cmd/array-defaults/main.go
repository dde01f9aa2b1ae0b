// Command array-defaults prints a freshly declared [10]int to show that
// every element starts at zero.
package main

import (
	"log"
	"os"

	"go-arrays/internal/app/bootstrap"
	"go-arrays/internal/demo"
)

func main() {
	// Initialize container with all dependencies
	container, err := bootstrap.NewContainer(bootstrap.ContainerOptions{
		ConfigPath: "./configs",
	})
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// The runner logs failures itself
	runErr := container.Runner.RunByName(demo.ArrayDefaults)
	if err := container.Close(); err != nil {
		log.Printf("Failed to close container: %v", err)
	}

	if runErr != nil {
		os.Exit(1)
	}
}
