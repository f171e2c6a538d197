package missions

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/planetary-society/missions/pkg/errors"
)

// FormatYAML returns a well-formatted YAML representation of the mission with
// section comments. Records are edited by hand between ingests, so output
// stability and readability matter more than compactness.
func (m *Mission) FormatYAML() string {
	commentMap := yaml.CommentMap{}

	commentMap["$"] = []*yaml.Comment{
		yaml.HeadComment(fmt.Sprintf(" %s (%s)", m.CanonicalFullName, m.CanonicalShortName)),
	}

	commentMap["$.status"] = []*yaml.Comment{
		yaml.HeadComment(" Mission lifecycle"),
	}

	commentMap["$.spacecraft"] = []*yaml.Comment{
		yaml.HeadComment(" Spacecraft, matched across ingests by COSPAR ID"),
	}

	yamlData, err := yaml.MarshalWithOptions(m,
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseLiteralStyleIfMultiline(true), // block scalar for long descriptions
		yaml.WithComment(commentMap),
	)
	if err != nil {
		// Fallback to basic marshal if comment marshaling fails
		yamlData, _ = yaml.Marshal(m)
	}

	return string(yamlData)
}

// UnmarshalMission parses a mission record from YAML bytes.
func UnmarshalMission(data []byte, file string) (*Mission, error) {
	var m Mission
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}
	return &m, nil
}
