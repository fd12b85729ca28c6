package docxfill

import "errors"

// StyleTransformer is the external style-transform collaborator. It
// receives the raw document part, an opaque stylesheet, a flat parameter
// mapping and the namespace the parameters are bound under, and returns
// the transformed part text.
//
// Implementations report stage failures (stylesheet import, parameter
// binding, source parse, transform) as TransformError; any other failure
// is wrapped in one by ApplyStyleTransform.
type StyleTransformer interface {
	Transform(source string, stylesheet []byte, params map[string]string, paramNamespace string) (string, error)
}

// ApplyStyleTransform runs the configured style transformer over the
// document part and stores the result. The transformer is injected with
// WithStyleTransformer when the engine is built.
func (t *Template) ApplyStyleTransform(stylesheet []byte, params map[string]string, paramNamespace string) error {
	if t.transformer == nil {
		return NewTransformError("configure", errors.New("no style transformer configured"))
	}

	out, err := t.transformer.Transform(t.document, stylesheet, params, paramNamespace)
	if err != nil {
		if IsTransformError(err) {
			return err
		}
		return NewTransformError("transform", err)
	}

	t.document = out
	return nil
}
