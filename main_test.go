package main

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestBuildVersion(t *testing.T) {
	defer func(v, sha string) { Version, CommitSHA = v, sha }(Version, CommitSHA)

	Version, CommitSHA = "", ""
	assert.Equal(t, "dev", buildVersion())

	Version, CommitSHA = "v1.2.0", "abc1234"
	assert.Equal(t, "v1.2.0 (abc1234)", buildVersion())
}
