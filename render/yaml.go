package render

import (
	"github.com/goccy/go-yaml"

	"github.com/Digivate-Labs-Pvt-Ltd/remorph/ir"
)

// YAMLString dumps the generic structural form of n (variant tag, origin,
// argument vector with roles) as YAML. It is a debugging aid; the format
// carries no behavioral contract beyond being readable.
func YAMLString(n ir.Node) (string, error) {
	d, err := ir.MarshalJSON(n)
	if err != nil {
		return "", err
	}
	y, err := yaml.JSONToYAML(d)
	if err != nil {
		return "", err
	}
	return string(y), nil
}
