// File: bundle.go
// Title: Message Bundle
// Description: Implements the Bundle, the unit that owns parsed messages
//              and registered custom functions for one locale. Message
//              and function tables are guarded for concurrent
//              registration; resolution itself is a synchronous read-only
//              pass and takes no locks beyond the table lookups.

package message

import (
	"sort"
	"sync"

	lerror "github.com/msto63/lingua/core/error"
	"github.com/msto63/lingua/core/log"
	"github.com/msto63/lingua/message/ast"
	"github.com/msto63/lingua/message/parser"
	"github.com/msto63/lingua/message/value"
	"github.com/msto63/lingua/utils/stringx"
)

// Func is a custom function callable from placeables. It receives the
// resolved positional arguments and the named arguments of the call and
// returns the result value together with any non-fatal diagnostics.
// Returning the error value makes the resolver render the call-site
// fallback instead.
type Func func(positional []value.Value, named value.Args) (value.Value, []error)

// Options configures bundle construction
type Options struct {
	// Locale is the locale messages are formatted for (required)
	Locale string

	// Logger receives registration and loading events
	Logger *log.Logger

	// DisableIsolating turns off the bidi isolation of placeables.
	// Isolation is on by default: every dynamic value is fenced with
	// U+2068 / U+2069 so its direction cannot leak into the message.
	DisableIsolating bool
}

// Bundle owns the messages and custom functions of one locale
type Bundle struct {
	locale       string
	messages     map[string]*ast.Message
	funcs        map[string]Func
	useIsolating bool
	logger       *log.Logger
	mu           sync.RWMutex
}

// New creates a bundle for the given locale
func New(opts Options) (*Bundle, error) {
	if stringx.IsBlank(opts.Locale) {
		return nil, lerror.New("bundle locale cannot be empty").
			WithCode(lerror.CodeValidationFailed).
			WithOperation("message.New")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Bundle{
		locale:       opts.Locale,
		messages:     make(map[string]*ast.Message),
		funcs:        make(map[string]Func),
		useIsolating: !opts.DisableIsolating,
		logger:       logger.WithField("component", "bundle").WithField("locale", opts.Locale),
	}, nil
}

// Locale returns the bundle's locale
func (b *Bundle) Locale() string {
	return b.locale
}

// AddResource parses a message resource and adds its messages to the
// bundle. Parsing and duplicate-identifier problems are reported as
// diagnostics; all well-formed, non-conflicting messages still load.
func (b *Bundle) AddResource(source string) []error {
	resource, errs := parser.Parse(source)

	b.mu.Lock()
	added := 0
	for _, msg := range resource.Messages {
		if _, exists := b.messages[msg.ID]; exists {
			errs = append(errs, lerror.New("message already defined").
				WithCode(lerror.CodeDuplicateMessage).
				WithOperation("bundle.AddResource").
				WithDetail("id", msg.ID))
			continue
		}
		b.messages[msg.ID] = msg
		added++
	}
	b.mu.Unlock()

	b.logger.Debug("resource added", log.Fields{
		"messages":    added,
		"diagnostics": len(errs),
	})

	return errs
}

// AddFunction registers a custom function under the given name.
// Registering a name twice is rejected.
func (b *Bundle) AddFunction(name string, fn Func) error {
	if stringx.IsBlank(name) {
		return lerror.New("function name cannot be empty").
			WithCode(lerror.CodeValidationFailed).
			WithOperation("bundle.AddFunction")
	}
	if fn == nil {
		return lerror.New("function cannot be nil").
			WithCode(lerror.CodeValidationFailed).
			WithOperation("bundle.AddFunction").
			WithDetail("function", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.funcs[name]; exists {
		return lerror.New("function already registered").
			WithCode(lerror.CodeAlreadyRegistered).
			WithOperation("bundle.AddFunction").
			WithDetail("function", name)
	}

	b.funcs[name] = fn

	b.logger.Info("function registered", log.Fields{"function": name})
	return nil
}

// HasMessage checks whether a message identifier is defined
func (b *Bundle) HasMessage(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.messages[id]
	return exists
}

// GetMessage returns a message by identifier
func (b *Bundle) GetMessage(id string) (*ast.Message, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	msg, exists := b.messages[id]
	return msg, exists
}

// MessageIDs returns the sorted identifiers of all messages
func (b *Bundle) MessageIDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.messages))
	for id := range b.messages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// getFunction returns a registered function by name
func (b *Bundle) getFunction(name string) (Func, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	fn, exists := b.funcs[name]
	return fn, exists
}

// FormatMessage resolves the message with the given identifier. The
// returned diagnostics are non-fatal: the text is always usable, failed
// placeables degrade to their source representation.
func (b *Bundle) FormatMessage(id string, args value.Args) (string, []error) {
	msg, exists := b.GetMessage(id)
	if !exists {
		err := lerror.New("unknown message").
			WithCode(lerror.CodeMissingMessage).
			WithOperation("bundle.FormatMessage").
			WithDetail("id", id)
		return "", []error{err}
	}
	return b.FormatPattern(msg.Pattern, args)
}

// FormatPattern resolves a pattern against the given arguments
func (b *Bundle) FormatPattern(pattern *ast.Pattern, args value.Args) (string, []error) {
	r := &resolver{bundle: b, args: args}
	text := r.resolvePattern(pattern)
	return text, r.errors
}
