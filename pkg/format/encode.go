package format

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/mysqlparse/pkg/ast"
)

// Node is the exported shape of a tree node. Rules carry Children, leaves
// carry Value and their source position.
type Node struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Value    string  `json:"value,omitempty" yaml:"value,omitempty"`
	Line     int     `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int     `json:"column,omitempty" yaml:"column,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Export converts a tree into its exported form.
func Export(n ast.Node) *Node {
	switch v := n.(type) {
	case *ast.Leaf:
		return &Node{Kind: v.Kind(), Value: v.Value, Line: v.Pos.Line, Column: v.Pos.Column}
	case *ast.Rule:
		out := &Node{Kind: v.Name, Children: make([]*Node, 0, len(v.Children))}
		for _, c := range v.Children {
			out.Children = append(out.Children, Export(c))
		}
		return out
	}
	return nil
}

// JSON renders n as indented JSON.
func JSON(n ast.Node) ([]byte, error) {
	data, err := json.MarshalIndent(Export(n), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tree as json: %w", err)
	}
	return data, nil
}

// YAML renders n as a YAML document.
func YAML(n ast.Node) ([]byte, error) {
	data, err := yaml.Marshal(Export(n))
	if err != nil {
		return nil, fmt.Errorf("encode tree as yaml: %w", err)
	}
	return data, nil
}
