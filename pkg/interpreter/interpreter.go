package interpreter

import (
	"io"
	"log/slog"

	"l21/interpreter-go/pkg/ast"
	"l21/interpreter-go/pkg/parser"
	"l21/interpreter-go/pkg/primitives"
	"l21/interpreter-go/pkg/runtime"
)

// Session owns one store and one global frame. Independent sessions never
// share cells. A session is not safe for concurrent use.
type Session struct {
	store      *runtime.Store
	global     *runtime.GlobalEnv
	primitives *primitives.Table
	logger     *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes evaluation traces to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPrimitives replaces the primitive operator table.
func WithPrimitives(table *primitives.Table) Option {
	return func(s *Session) {
		if table != nil {
			s.primitives = table
		}
	}
}

// NewSession returns a session with an empty store and global frame.
func NewSession(opts ...Option) *Session {
	s := &Session{
		store:      runtime.NewStore(),
		global:     runtime.NewGlobalEnv(),
		primitives: primitives.Default(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the session's store.
func (s *Session) Store() *runtime.Store {
	return s.store
}

// Global returns the session's global frame.
func (s *Session) Global() *runtime.GlobalEnv {
	return s.global
}

// EvaluateProgram evaluates the program's top-level sequence in the global
// frame and returns the value of its last non-define expression.
func (s *Session) EvaluateProgram(program *ast.Program) (runtime.Value, error) {
	if program == nil {
		return nil, ErrEmptySequence
	}
	return s.evalSequence(program.Exps, s.global)
}

// EvaluateSource parses text and evaluates the resulting program.
func (s *Session) EvaluateSource(text string) (runtime.Value, error) {
	program, err := parser.ParseSource(text)
	if err != nil {
		return nil, err
	}
	return s.EvaluateProgram(program)
}

// EvaluateExpression evaluates a single top-level expression, which may be a
// define, against the session's global state.
func (s *Session) EvaluateExpression(exp ast.Exp) (runtime.Value, error) {
	return s.evalSequence([]ast.Exp{exp}, s.global)
}
