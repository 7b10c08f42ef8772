package catalog

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadQuestions reads question text from a YAML file of the form
//
//	questions:
//	  - id: 4
//	    gift: teaching
//	    text: "I enjoy explaining ideas so others understand them."
//
// Pass the result to WithQuestions and call Validate to check it against
// the scoring layout.
func LoadQuestions(_ context.Context, path string) ([]Question, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadQuestions, path, err)
	}

	var qs []Question
	if err := k.UnmarshalWithConf("questions", &qs, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadQuestions, path, err)
	}
	return qs, nil
}
