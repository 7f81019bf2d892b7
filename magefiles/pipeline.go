//go:build mage

package main

import (
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI binary with the given arguments.
func run(args ...string) error {
	cmd := exec.Command("./bin/"+binName, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Lint checks the corpus against the editorial rules.
func Lint() error {
	mg.Deps(Build)
	return run("lint")
}

// Index rebuilds the section search index from the corpus.
func Index() error {
	mg.Deps(Build)
	return run("index", "store")
}

// Site renders the corpus to static HTML under site/.
func Site() error {
	mg.Deps(Build)
	return run("build")
}

// Figures regenerates the numeric tables under data/.
func Figures() error {
	mg.Deps(Build)
	return run("figures")
}