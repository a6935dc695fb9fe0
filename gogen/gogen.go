// Package gogen generates Go source for a matcher that runs a DFA.
package gogen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"

	"reglang/automaton"
)

const (
	defaultPackage = "matcher"
	defaultFunc    = "Match"

	inputName = "input"
	stateName = "state"
	runeName  = "r"
)

// Config holds the names used in generated code. Zero fields get defaults.
type Config struct {
	Package string
	Func    string
}

func (c Config) withDefaults() Config {
	if c.Package == "" {
		c.Package = defaultPackage
	}
	if c.Func == "" {
		c.Func = defaultFunc
	}
	return c
}

// Generate builds a file holding one function, func <Func>(input string)
// bool, that reports whether input is accepted by d. d must be total.
func Generate(d *automaton.DFA, cfg Config) (*jen.File, error) {
	cfg = cfg.withDefaults()
	if !token.IsIdentifier(cfg.Package) || !token.IsIdentifier(cfg.Func) {
		return nil, fmt.Errorf("gogen: invalid identifiers %q/%q", cfg.Package, cfg.Func)
	}
	if !d.IsTotal() {
		return nil, fmt.Errorf("gogen: DFA is not total")
	}

	live := d.Productive()
	alpha := d.Alphabet()

	// a state with every edge into a non-productive state stops the loop
	// without looking at the rune
	usesRune := false
	for s := range d.NumStates() {
		if !live[s] {
			continue
		}
		for _, sym := range alpha {
			if live[d.Transition(s, sym)] {
				usesRune = true
			}
		}
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by reglang/gogen. DO NOT EDIT.")

	var body []jen.Code
	if !live[d.Initial()] {
		body = append(body, jen.Return(jen.False()))
	} else {
		body = append(body,
			jen.Id(stateName).Op(":=").Lit(d.Initial()),
			loop(d, live, alpha, usesRune),
			acceptSwitch(d, live),
			jen.Return(jen.False()),
		)
	}

	f.Commentf("%s reports whether %s is accepted by the automaton.", cfg.Func, inputName)
	f.Func().Id(cfg.Func).Params(jen.Id(inputName).String()).Bool().Block(body...)
	return f, nil
}

func loop(d *automaton.DFA, live []bool, alpha []rune, usesRune bool) jen.Code {
	cases := jen.Switch(jen.Id(stateName)).BlockFunc(func(g *jen.Group) {
		for s := range d.NumStates() {
			if !live[s] {
				continue
			}
			g.Case(jen.Lit(s)).Block(stateBody(d, live, alpha, s))
		}
	})
	if !usesRune {
		return jen.For(jen.Range().Id(inputName)).Block(cases)
	}
	return jen.For(jen.List(jen.Id("_"), jen.Id(runeName)).Op(":=").Range().Id(inputName)).Block(cases)
}

func stateBody(d *automaton.DFA, live []bool, alpha []rune, s int) jen.Code {
	targets := map[int][]jen.Code{}
	var order []int
	for _, sym := range alpha {
		to := d.Transition(s, sym)
		if !live[to] {
			continue
		}
		if _, ok := targets[to]; !ok {
			order = append(order, to)
		}
		targets[to] = append(targets[to], jen.LitRune(sym))
	}
	if len(order) == 0 {
		return jen.Return(jen.False())
	}
	return jen.Switch(jen.Id(runeName)).BlockFunc(func(g *jen.Group) {
		for _, to := range order {
			g.Case(targets[to]...).Block(jen.Id(stateName).Op("=").Lit(to))
		}
		g.Default().Block(jen.Return(jen.False()))
	})
}

func acceptSwitch(d *automaton.DFA, live []bool) jen.Code {
	var accepting []jen.Code
	for _, s := range d.Accepting() {
		if live[s] {
			accepting = append(accepting, jen.Lit(s))
		}
	}
	return jen.Switch(jen.Id(stateName)).Block(
		jen.Case(accepting...).Block(jen.Return(jen.True())),
	)
}

// Render writes the generated, gofmt-ed source to w.
func Render(w io.Writer, d *automaton.DFA, cfg Config) error {
	f, err := Generate(d, cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}
