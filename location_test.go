package hdrscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationCompare(t *testing.T) {
	fa := &SourceFile{Path: "a.h"}
	fb := &SourceFile{Path: "b.h"}

	cases := []struct {
		name string
		a, b Location
		want int
	}{
		{"different paths", NewLocation(fa, 1, 1), NewLocation(fb, 1, 1), -1},
		{"same path, different line", NewLocation(fa, 1, 1), NewLocation(fa, 2, 1), -1},
		{"same path and line, different col", NewLocation(fa, 1, 1), NewLocation(fa, 1, 2), -1},
		{"equal", NewLocation(fa, 1, 1), NewLocation(fa, 1, 1), 0},
		{"unset line sorts before set line", NewLocation(fa, 0, 0), NewLocation(fa, 1, 1), -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Compare(c.b))
			assert.Equal(t, -c.want, c.b.Compare(c.a))
		})
	}
}

func TestLocationString(t *testing.T) {
	f := &SourceFile{Path: "windows.h"}
	assert.Equal(t, "windows.h", NewLocation(f, 0, 0).String())
	assert.Equal(t, "windows.h:10", NewLocation(f, 10, 0).String())
	assert.Equal(t, "windows.h:10:4", NewLocation(f, 10, 4).String())
}

func TestAppendIssueDeduplicates(t *testing.T) {
	f := &SourceFile{Path: "x.h"}
	loc := NewLocation(f, 1, 1)

	var issues []Issue
	appendIssue(&issues, NewIssue(loc, IssueStructural, "boom"))
	appendIssue(&issues, NewIssue(loc, IssueStructural, "boom"))
	require.Len(t, issues, 1)

	appendIssue(&issues, NewIssue(loc, IssueStructural, "different"))
	require.Len(t, issues, 2)
}
