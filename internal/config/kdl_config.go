package config

import (
	"fmt"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// parseKDL parses a .dym.kdl document into a Config, starting from the
// defaults so unspecified fields keep their built-in values.
//
// Expected shape:
//
//	suggest {
//	    max_results 5
//	    min_score 0.3
//	    algorithm "composite"
//	    category "namespace" {
//	        min_score 0.45
//	    }
//	}
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		if nodeName(n) != "suggest" {
			continue
		}
		for _, cn := range n.Children {
			switch nodeName(cn) {
			case "max_results":
				if v, ok := firstIntArg(cn); ok {
					cfg.Suggest.MaxResults = v
				}
			case "min_score":
				if v, ok := firstFloatArg(cn); ok {
					cfg.Suggest.MinScore = v
				}
			case "algorithm":
				if s, ok := firstStringArg(cn); ok {
					cfg.Suggest.Algorithm = s
				}
			case "category":
				name, ok := firstStringArg(cn)
				if !ok {
					return nil, fmt.Errorf("category node requires a name argument")
				}
				for _, sn := range cn.Children {
					if nodeName(sn) == "min_score" {
						if v, ok := firstFloatArg(sn); ok {
							cfg.Suggest.CategoryMinScores[name] = v
						}
					}
				}
			}
		}
	}

	return cfg, nil
}

// Helper functions leveraging the kdl-go document model.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstFloatArg(n *document.Node) (float64, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}
