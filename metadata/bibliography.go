package metadata

import (
	"path"

	"github.com/eolymp/go-textree"
)

// Bibliographies returns paths to bibliography files used by the document: \bibliography{a,b} gives a.bib and
// b.bib, \addbibresource{refs.bib} is taken as is. Paths are listed once, in document order.
func Bibliographies(tree *latex.Tree) (paths []string) {
	seen := map[string]bool{}
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}

		seen[p] = true
		paths = append(paths, p)
	}

	latex.Walk(tree.Root, func(n *latex.Node) bool {
		if n.Kind != latex.CommandKind {
			return true
		}

		switch n.Name() {
		case "bibliography":
			value, _ := n.Argument()
			for _, name := range latex.List(value) {
				if path.Ext(name) == "" {
					name += ".bib"
				}

				add(name)
			}
		case "addbibresource":
			value, _ := n.Argument()
			add(value)
		}

		return true
	})

	return
}
