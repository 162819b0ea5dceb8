// Package repository locates the enclosing git worktree, which potcat
// uses for project-level config discovery.
package repository

import (
	"os"

	"github.com/jiangxin/goconfig"
)

// Repository holds the opened repository and the open error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find a repository in dir or above.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find a repository in dir or above.
// Not finding one is fine: potcat works on explicit file paths, and
// only config discovery cares about the project root.
func OpenRepository(dir string) {
	_ = theRepository.Open(dir)
}

// Opened returns true if a repository was successfully opened, i.e.
// when running inside a git worktree.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// Err returns the error from the last OpenRepository call, or nil if
// open succeeded.
func Err() error {
	return theRepository.error
}

// WorkDir returns the root dir of the worktree, or the empty string
// when no repository is opened.
func WorkDir() string {
	if !Opened() {
		return ""
	}
	return theRepository.repository.WorkDir()
}

// WorkDirOrCwd returns WorkDir() when a repository is opened,
// otherwise the current working directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
