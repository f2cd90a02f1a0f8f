package driver

import (
	"fmt"
	"log/slog"
	"os"

	"l21/interpreter-go/pkg/interpreter"
	"l21/interpreter-go/pkg/primitives"
)

// OpenSession builds a session configured by m and evaluates its prelude
// files, in order, into the session's global frame.
func OpenSession(m *Manifest) (*interpreter.Session, error) {
	if m == nil {
		return nil, fmt.Errorf("driver: nil manifest")
	}
	var opts []interpreter.Option
	if len(m.Primitives) > 0 {
		table, err := primitives.Default().Restrict(m.Primitives)
		if err != nil {
			return nil, fmt.Errorf("driver: %s: %w", m.Name, err)
		}
		opts = append(opts, interpreter.WithPrimitives(table))
	}
	if m.Trace {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, interpreter.WithLogger(slog.New(handler).With(slog.String("session", m.Name))))
	}

	session := interpreter.NewSession(opts...)
	for _, path := range m.PreludePaths() {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("driver: read prelude %s: %w", path, err)
		}
		if _, err := session.EvaluateSource(string(source)); err != nil {
			return nil, fmt.Errorf("driver: prelude %s: %w", path, err)
		}
	}
	return session, nil
}
