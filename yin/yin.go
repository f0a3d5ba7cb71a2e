package yin

import (
	"bytes"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"

	"github.com/logbob0401/libyang/loader"
	"github.com/logbob0401/libyang/resolve"
	"github.com/logbob0401/libyang/schema"
	"github.com/logbob0401/libyang/yerr"
)

var (
	xpModule    = xpath.MustCompile("/module")
	xpSubmodule = xpath.MustCompile("/submodule")
	xpRevision  = xpath.MustCompile("revision")
	xpImport    = xpath.MustCompile("import")
	xpBelongsTo = xpath.MustCompile("belongs-to")
	xpPrefix    = xpath.MustCompile("prefix")
	xpNamespace = xpath.MustCompile("namespace")
)

// Parse reads a YIN-encoded module or submodule, matching the shape of
// loader.ParseFunc so it can be installed directly via
// loader.WithParseFunc when a caller has no YANG/YIN parser of its own.
func Parse(data []byte, format loader.Format, isSubmodule bool) (*schema.Module, *schema.Submodule, error) {
	if format != loader.FormatYIN {
		return nil, nil, yerr.InvalidInputf(yerr.WithMessage("yin: Parse only supports the YIN format"))
	}
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if isSubmodule {
		root := xmlquery.QuerySelector(doc, xpSubmodule)
		if root == nil {
			return nil, nil, yerr.InvalidInputf(yerr.WithMessage("yin: no <submodule> root element"))
		}
		return nil, readSubmodule(root), nil
	}

	root := xmlquery.QuerySelector(doc, xpModule)
	if root == nil {
		return nil, nil, yerr.InvalidInputf(yerr.WithMessage("yin: no <module> root element"))
	}
	return readModule(root), nil, nil
}

func readModule(root *xmlquery.Node) *schema.Module {
	mod := &schema.Module{Name: argument(root), LatestRevision: schema.LatestTentative}
	if ns := xmlquery.QuerySelector(root, xpNamespace); ns != nil {
		mod.Namespace = attrOrArgument(ns, "uri")
	}
	if pfx := xmlquery.QuerySelector(root, xpPrefix); pfx != nil {
		mod.Prefix = argument(pfx)
	}
	mod.Revisions = readRevisions(root)
	mod.Imports = readImports(root)
	return mod
}

func readSubmodule(root *xmlquery.Node) *schema.Submodule {
	sub := &schema.Submodule{Name: argument(root), LatestRevision: schema.LatestTentative}
	if bt := xmlquery.QuerySelector(root, xpBelongsTo); bt != nil {
		sub.BelongsTo = argument(bt)
	}
	sub.Revisions = readRevisions(root)
	return sub
}

func readRevisions(root *xmlquery.Node) []schema.Revision {
	var revs []schema.Revision
	for _, n := range xmlquery.QuerySelectorAll(root, xpRevision) {
		revs = append(revs, schema.Revision{Date: argument(n)})
	}
	resolve.SortRevisions(revs)
	return revs
}

func readImports(root *xmlquery.Node) []schema.Import {
	var imps []schema.Import
	for _, n := range xmlquery.QuerySelectorAll(root, xpImport) {
		imp := schema.Import{Name: argument(n)}
		if pfx := xmlquery.QuerySelector(n, xpPrefix); pfx != nil {
			imp.Prefix = argument(pfx)
		}
		imps = append(imps, imp)
	}
	return imps
}

// argument returns a statement's argument. YIN renders most arguments as
// an attribute named after the statement's argument keyword; this reader
// tries the common names before falling back to trimmed inner text,
// since which attribute name applies depends on the statement and this
// package does not carry the full per-keyword yin-element table.
func argument(n *xmlquery.Node) string {
	for _, attr := range []string{"name", "value", "date", "uri", "module"} {
		if v := n.SelectAttr(attr); v != "" {
			return v
		}
	}
	return strings.TrimSpace(n.InnerText())
}

func attrOrArgument(n *xmlquery.Node, attr string) string {
	if v := n.SelectAttr(attr); v != "" {
		return v
	}
	return argument(n)
}
