package git

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// tagLine matches one line of `git show-ref --tags`. SHA-256 repositories
// print 64 hex digits.
var tagLine = regexp.MustCompile(`^([0-9a-f]{40}(?:[0-9a-f]{24})?) (refs/tags/.+)$`)

// Tags returns every tag in the repository mapped to the object id its ref
// points at. For annotated tags that is the tag object, not the commit.
//
// The table is loaded with a single `git show-ref --tags` and cached; the
// returned map is a copy and may be modified. A repository without tags
// yields an empty map.
//
// Returns *ParseError if git prints a line it does not recognise, in which
// case nothing is cached.
//
// Example:
//
//	tags, err := repo.Tags(ctx)
//	if err != nil {
//	    return err
//	}
//	for name, id := range tags {
//	    fmt.Println(name, id)
//	}
func (r *Repository) Tags(ctx context.Context) (map[string]string, error) {
	if tags, ok := r.cache.Tags(); ok {
		r.logger.Debug("tag cache hit", "tags", len(tags))
		return tags, nil
	}

	gen := r.cache.Generation()
	out, err := r.invoke(ctx, "show-ref", "--tags")
	if err != nil {
		if !isEmptyTagListing(err) {
			return nil, err
		}
		out = nil
	}

	tags, err := parseTags(out)
	if err != nil {
		return nil, err
	}

	r.cache.PutTags(gen, tags)
	return tags, nil
}

// parseTags builds the tag table from `git show-ref --tags` output.
// Blank lines are ignored. A line whose ref name is not a valid git
// reference name is a parse error.
func parseTags(out []byte) (map[string]string, error) {
	tags := make(map[string]string)

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		m := tagLine.FindStringSubmatch(line)
		if m == nil {
			return nil, newParseError(line)
		}

		// Reject names git itself would refuse (check-ref-format rules).
		ref := plumbing.ReferenceName(m[2])
		if err := ref.Validate(); err != nil {
			return nil, newParseError(line)
		}
		tags[strings.TrimPrefix(ref.String(), "refs/tags/")] = m[1]
	}

	return tags, nil
}
