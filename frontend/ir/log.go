package ir

import (
	"context"
	"log/slog"
)

// slogNode wraps a Node as a slog.LogValuer to not render trees
// unless they definitely need to be logged
func slogNode(node Node) slog.LogValuer {
	return nodeLogValuer{node}
}

type nodeLogValuer struct{ Node }

func (l nodeLogValuer) LogValue() slog.Value { return slog.StringValue(l.Node.String()) }

// TreeSlogHandler is a slog.Handler capable of lazy-printing type trees
func TreeSlogHandler(underlying slog.Handler) slog.Handler {
	return &treeLogHandler{underlying: underlying}
}

// TreeLogger wraps a logger so Node attributes render lazily
func TreeLogger(underlying *slog.Logger) *slog.Logger {
	return slog.New(TreeSlogHandler(underlying.Handler()))
}

type treeLogHandler struct {
	underlying slog.Handler
}

func (l *treeLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *treeLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	// for each attr, wrap it in slogNode if it is an Any holding a Node
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Value.Kind() == slog.KindAny {
			if node, ok := attr.Value.Any().(Node); ok {
				newRecord.Add(attr.Key, slogNode(node))
				return true
			}
		}
		newRecord.Add(attr)
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *treeLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for i, attr := range attrs {
		if attr.Value.Kind() == slog.KindAny {
			if node, ok := attr.Value.Any().(Node); ok {
				attr.Value = slog.AnyValue(slogNode(node))
			}
			attrs[i] = attr
		}
	}
	return TreeSlogHandler(l.underlying.WithAttrs(attrs))
}

func (l *treeLogHandler) WithGroup(name string) slog.Handler {
	return TreeSlogHandler(l.underlying.WithGroup(name))
}
