package functions

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rulego/streamexpr/types"
)

// FunctionType groups functions by their domain
type FunctionType string

const (
	TypeDateTime   FunctionType = "datetime"
	TypeConversion FunctionType = "conversion"
	TypeMath       FunctionType = "math"
	TypeString     FunctionType = "string"
	// TypeCustom marks functions registered by the host application
	TypeCustom FunctionType = "custom"
)

// FunctionContext is passed to every invocation.
type FunctionContext struct {
	// Window is the window of the row being evaluated, nil for unwindowed rows.
	Window *types.TimeSlot
}

// Function is a user-defined scalar function. Implementations must be safe for
// concurrent use and free of side effects.
type Function interface {
	GetName() string
	GetType() FunctionType
	GetCategory() string
	GetDescription() string
	// Signature declares parameter and return types. It is checked once when an
	// expression calling the function is compiled.
	Signature() Signature
	// Validate checks the compiled argument types.
	Validate(argTypes []types.SQLType) error
	// Execute runs the function. args hold the operand payloads in order, nil for NULL.
	Execute(ctx *FunctionContext, args []interface{}) (interface{}, error)
}

// FunctionRegistry resolves functions by case-insensitive name.
type FunctionRegistry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	categories map[FunctionType][]Function
}

var globalRegistry = NewFunctionRegistry()

// NewFunctionRegistry creates an empty registry
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions:  make(map[string]Function),
		categories: make(map[FunctionType][]Function),
	}
}

// Register adds fn. Names are unique regardless of case.
func (r *FunctionRegistry) Register(fn Function) error {
	if fn == nil || strings.TrimSpace(fn.GetName()) == "" {
		return fmt.Errorf("function name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(fn.GetName())
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}
	r.functions[name] = fn
	r.categories[fn.GetType()] = append(r.categories[fn.GetType()], fn)
	return nil
}

// Get looks up a function by name
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetByType lists the functions of one type
func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Function, len(r.categories[fnType]))
	copy(result, r.categories[fnType])
	return result
}

// ListAll returns a snapshot of every registered function keyed by lower-case name
func (r *FunctionRegistry) ListAll() map[string]Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Function, len(r.functions))
	for name, fn := range r.functions {
		result[name] = fn
	}
	return result
}

// Unregister removes a function. Already compiled expressions keep their handle.
func (r *FunctionRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	fn, exists := r.functions[name]
	if !exists {
		return false
	}
	delete(r.functions, name)

	fnType := fn.GetType()
	funcs := r.categories[fnType]
	for i, f := range funcs {
		if strings.ToLower(f.GetName()) == name {
			r.categories[fnType] = append(funcs[:i:i], funcs[i+1:]...)
			break
		}
	}
	return true
}

// Default returns the process-wide registry holding the built-in functions.
func Default() *FunctionRegistry {
	return globalRegistry
}

func Register(fn Function) error {
	return globalRegistry.Register(fn)
}

func Get(name string) (Function, bool) {
	return globalRegistry.Get(name)
}

func GetByType(fnType FunctionType) []Function {
	return globalRegistry.GetByType(fnType)
}

func ListAll() map[string]Function {
	return globalRegistry.ListAll()
}

func Unregister(name string) bool {
	return globalRegistry.Unregister(name)
}
