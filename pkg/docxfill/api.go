// Package docxfill fills ${name} placeholders in Word documents (DOCX)
// with caller-supplied values and clones repeating regions: table rows
// (including vertical-merge spans) and paragraph-delimited named blocks.
//
// All structural work is done with raw-text scanning over the package's
// XML parts instead of a parsed tree, so formatting outside the touched
// regions survives byte-for-byte.
//
// Basic Usage:
//
//	tmpl, err := docxfill.Open("contract.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tmpl.SetValue("customer", "ACME Corp.")
//	if err := tmpl.CloneRow("item", 3); err != nil {
//	    log.Fatal(err)
//	}
//	tmpl.SetValue("item#1", "Widget")
//
//	if err := tmpl.SaveAs("contract-acme.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Placeholder syntax: ${identifier}. Block markers: ${name} ... ${/name}
// occupying whole paragraphs. Row cloning rewrites placeholders to the
// discriminator form ${identifier#index}.
package docxfill

// Engine opens documents with a shared configuration and an optional
// style-transform collaborator. Use New() or NewWithOptions() to create
// an instance.
type Engine struct {
	config      *Config
	transformer StyleTransformer
}

// New creates a new engine with the global configuration.
func New() *Engine {
	return &Engine{
		config: GetGlobalConfig(),
	}
}

// NewWithConfig creates a new engine with a custom configuration.
func NewWithConfig(config *Config) *Engine {
	return &Engine{
		config: config,
	}
}

// Open copies the package at path to a private working file and loads its
// document, header and footer parts. The source file is never touched.
func (e *Engine) Open(path string) (*Template, error) {
	return open(path, e.config, e.transformer)
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Option represents a configuration option for the engine.
type Option func(*Engine)

// WithConfig returns an option that sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(e *Engine) {
		e.config = config
	}
}

// WithWorkDir returns an option that sets the directory for working copies.
func WithWorkDir(dir string) Option {
	return func(e *Engine) {
		e.config.WorkDir = dir
	}
}

// WithStyleTransformer returns an option that injects the style-transform
// collaborator used by Template.ApplyStyleTransform.
func WithStyleTransformer(transformer StyleTransformer) Option {
	return func(e *Engine) {
		e.transformer = transformer
	}
}

// NewWithOptions creates a new engine with the specified options.
func NewWithOptions(opts ...Option) *Engine {
	engine := New()
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// DefaultEngine is the global default engine instance.
// It uses the global configuration.
var DefaultEngine = New()
