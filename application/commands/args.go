package commands

import (
	"strings"

	"graphlens/domain/core/valueobjects"
	pkgerrors "graphlens/pkg/errors"
)

// property is one --property k=v pair, order-preserving
type property struct {
	key   string
	value string
}

// parsedArgs holds the decoded flags and positionals of one command
type parsedArgs struct {
	id         string
	hasID      bool
	properties []property
	removals   []string
	direction  *valueobjects.Direction
	positional []string
}

// parseArgs decodes the flag grammar shared by the node and edge
// commands: --id=<id>, --property k=v, --unset-property name,
// --directed, --undirected. Unrecognized flags are rejected; everything
// else is positional.
func parseArgs(tokens []string) (*parsedArgs, error) {
	args := &parsedArgs{}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch {
		case strings.HasPrefix(token, "--id="):
			id := strings.TrimPrefix(token, "--id=")
			if id == "" {
				return nil, pkgerrors.NewMalformedArgumentError("--id requires a value")
			}
			args.id = id
			args.hasID = true

		case token == "--property":
			if i+1 >= len(tokens) {
				return nil, pkgerrors.NewMalformedArgumentError("expected key=value after --property")
			}
			i++
			key, value, err := parseKeyValue(tokens[i])
			if err != nil {
				return nil, err
			}
			args.properties = append(args.properties, property{key: key, value: value})

		case token == "--unset-property":
			if i+1 >= len(tokens) {
				return nil, pkgerrors.NewMalformedArgumentError("expected property name after --unset-property")
			}
			i++
			args.removals = append(args.removals, tokens[i])

		case token == "--directed":
			d := valueobjects.Directed
			args.direction = &d

		case token == "--undirected":
			d := valueobjects.Undirected
			args.direction = &d

		case strings.HasPrefix(token, "--"):
			return nil, pkgerrors.NewMalformedArgumentError("unknown flag '%s'", token)

		default:
			args.positional = append(args.positional, token)
		}
	}

	return args, nil
}

// parseKeyValue splits a key=value token, trimming both sides
func parseKeyValue(kv string) (string, string, error) {
	idx := strings.Index(kv, "=")
	if idx < 0 {
		return "", "", pkgerrors.NewMalformedArgumentError("invalid key=value format: %s", kv)
	}
	key := strings.TrimSpace(kv[:idx])
	value := strings.TrimSpace(kv[idx+1:])
	if key == "" {
		return "", "", pkgerrors.NewMalformedArgumentError("invalid key=value format: %s", kv)
	}
	return key, value, nil
}

// propertyValue looks up a property by key; order of definition wins
func (a *parsedArgs) propertyValue(key string) (string, bool) {
	for _, p := range a.properties {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}
