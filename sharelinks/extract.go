package sharelinks

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"git.home.luguber.info/inful/sitehooks/config"
)

// ShareLinkDestinations parses a markdown body and returns the destinations
// of links pointing at one of the configured share-target endpoints, in
// document order. This is an audit API for orchestrators and tests; it does
// not attempt to re-render markdown.
func ShareLinkDestinations(body []byte, targets []config.ShareTarget) []string {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	dests := make([]string, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		var dest string
		switch node := n.(type) {
		case *gmast.AutoLink:
			dest = string(node.URL(body))
		case *gmast.Link:
			dest = string(node.Destination)
		default:
			return gmast.WalkContinue, nil
		}
		if matchesTarget(dest, targets) {
			dests = append(dests, dest)
		}
		return gmast.WalkContinue, nil
	})
	return dests
}

func matchesTarget(dest string, targets []config.ShareTarget) bool {
	for _, t := range targets {
		if strings.HasPrefix(dest, t.Endpoint) {
			return true
		}
	}
	return false
}
