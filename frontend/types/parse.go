package types

import (
	"github.com/basalt-lang/basalt/frontend/ir"
	"github.com/basalt-lang/basalt/frontend/typerr"
	"github.com/pkg/errors"
)

// TypeFromTree is the inverse of Unparse: it turns a type tree back into
// a type, resolving names in operator position against this registry.
// A bare symbol resolves to the registered constructor of that name when
// one exists, and otherwise introduces a type variable; occurrences of
// the same variable name within one call share one variable. Fresh
// variables are drawn from fresher.
func (r *Registry) TypeFromTree(tree ir.Node, fresher *Fresher) (Type, error) {
	parser := &treeParser{
		registry: r,
		fresher:  fresher,
		vars:     make(map[string]*TypeVariable),
	}
	parsed, err := parser.parse(tree)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("parsed type tree", "tree", tree, "type", parsed.String())
	return parsed, nil
}

type treeParser struct {
	registry *Registry
	fresher  *Fresher
	// vars interns variables by display name, local to one TypeFromTree call
	vars map[string]*TypeVariable
}

func (p *treeParser) parse(tree ir.Node) (Type, error) {
	switch tree := tree.(type) {
	case ir.Sym:
		if tree == ir.FnMarker || tree == ir.ArrowMarker {
			return nil, typerr.New(typerr.NewMalformedTree{Tree: tree, Reason: "reserved marker outside a function tree"})
		}
		if ctor, ok := p.registry.Lookup(string(tree)); ok {
			return MakeApplication(ctor, nil), nil
		}
		return p.variableNamed(string(tree)), nil
	case ir.Seq:
		if len(tree) == 0 {
			return nil, typerr.New(typerr.NewMalformedTree{Tree: tree, Reason: "empty sequence"})
		}
		if tree[0] == ir.FnMarker {
			return p.parseFunction(tree)
		}
		return p.parseApplication(tree)
	default:
		return nil, typerr.New(typerr.NewMalformedTree{Tree: tree, Reason: "unknown tree node"})
	}
}

func (p *treeParser) parseApplication(tree ir.Seq) (Type, error) {
	head, ok := tree[0].(ir.Sym)
	if !ok {
		return nil, typerr.New(typerr.NewMalformedTree{Tree: tree, Reason: "operator position must be a constructor name"})
	}
	ctor, err := p.registry.Get(string(head))
	if err != nil {
		return nil, err
	}
	args := make([]Type, 0, len(tree)-1)
	for i, argTree := range tree[1:] {
		arg, err := p.parse(argTree)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d of %s", i+1, head)
		}
		args = append(args, arg)
	}
	return MakeApplication(ctor, args), nil
}

// parseFunction parses the fixed shape (fn <params..> -> <result>)
func (p *treeParser) parseFunction(tree ir.Seq) (Type, error) {
	if len(tree) < 3 || tree[len(tree)-2] != ir.ArrowMarker {
		return nil, typerr.New(typerr.NewMalformedTree{Tree: tree, Reason: "function tree must end in -> followed by a result"})
	}
	params := make([]Type, 0, len(tree)-3)
	for i, paramTree := range tree[1 : len(tree)-2] {
		if paramTree == ir.ArrowMarker {
			return nil, typerr.New(typerr.NewMalformedTree{Tree: tree, Reason: "more than one -> in function tree"})
		}
		param, err := p.parse(paramTree)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d of function tree", i+1)
		}
		params = append(params, param)
	}
	ret, err := p.parse(tree[len(tree)-1])
	if err != nil {
		return nil, errors.Wrap(err, "result of function tree")
	}
	return MakeFunction(params, ret), nil
}

func (p *treeParser) variableNamed(name string) *TypeVariable {
	if variable, ok := p.vars[name]; ok {
		return variable
	}
	variable := p.fresher.NewVariable(name)
	p.vars[name] = variable
	return variable
}
