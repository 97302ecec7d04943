package testutil

// Test user information used for fixture commits and tags.
const (
	// TestAuthor is the author name for fixture commits.
	TestAuthor = "Test User"

	// TestEmail is the author email for fixture commits.
	TestEmail = "test@example.com"
)

// Test file content.
const (
	// TestFileContent is sample content for README files.
	TestFileContent = "# Test Repository\n\nThis is a test repository.\n"

	// TestGoFileContent is sample Go source code.
	TestGoFileContent = `package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}
`

	// TestChangelogContent is the changelog written at the first release.
	TestChangelogContent = "## v1.0.0\n\n- Initial release\n"
)

// Test commit messages.
const (
	// TestInitialCommit is the message for the first fixture commit.
	TestInitialCommit = "Initial commit"

	// TestFeatureCommit is the message for a follow-up commit.
	TestFeatureCommit = "Add new feature"
)

// Test tag names.
const (
	// TestTagName is the first release tag.
	TestTagName = "v1.0.0"

	// TestTagName2 is the second release tag.
	TestTagName2 = "v1.1.0"

	// TestTagMessage is the message of annotated fixture tags.
	TestTagMessage = "Release version 1.0.0"
)

// Test file paths.
const (
	// TestFilePath is the README at the repository root.
	TestFilePath = "README.md"

	// TestFilePath2 is a file in a subdirectory.
	TestFilePath2 = "docs/guide.md"

	// TestGoFilePath is a Go source file at the root.
	TestGoFilePath = "main.go"

	// TestChangelogPath exists only at TestTagName.
	TestChangelogPath = "CHANGELOG.md"
)
