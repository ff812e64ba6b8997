package answers

import (
	"context"
	"errors"
	"fmt"

	"ippt-coach/internal/integrations/paramstore"
)

// ParamGetter reads a single parameter value.
type ParamGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// LoadFromParams reads an answers document from the parameter store. A
// missing parameter yields the embedded catalog.
func LoadFromParams(ctx context.Context, p ParamGetter, name string) (*Catalog, error) {
	if p == nil {
		return nil, errors.New("answers: param getter must not be nil")
	}
	raw, err := p.GetParameter(ctx, name)
	if errors.Is(err, paramstore.ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("answers: load %q: %w", name, err)
	}
	return Parse([]byte(raw))
}
