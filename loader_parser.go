package nodegen

import (
	internalLoader "github.com/goliatone/go-nodegen/internal/inputschema/loader"
	"github.com/goliatone/go-nodegen/pkg/inputschema"
	"github.com/goliatone/go-nodegen/pkg/model"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...inputschema.LoaderOption) inputschema.Loader {
	cfg := inputschema.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewConverter constructs the property converter.
func NewConverter(options ...model.ConverterOption) model.Converter {
	return model.NewConverter(options...)
}
