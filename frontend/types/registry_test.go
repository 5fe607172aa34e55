package types_test

import (
	"context"
	"github.com/basalt-lang/basalt/frontend/typerr"
	"github.com/basalt-lang/basalt/frontend/types"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

// recordingHandler collects records so tests can assert on advisories
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestRegisterIsIdempotentForSameArity(t *testing.T) {
	registry := types.NewRegistry(nil)

	first, err := registry.Register("Pair", 2)
	assert.NoError(t, err)
	first.AddConstructors("MkPair")

	second, err := registry.Register("Pair", 2)
	assert.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, second.Arity())
	assert.Equal(t, []string{"MkPair"}, second.Constructors())
}

func TestRegisterConflictingArityFails(t *testing.T) {
	registry := types.NewRegistry(nil)

	_, err := registry.Register("Pair", 1)
	assert.NoError(t, err)

	_, err = registry.Register("Pair", 2)
	assert.Error(t, err)
	assert.Equal(t, typerr.ArityConflict, typerr.CodeOf(err))

	// diagnostics carry the code alongside the message
	typed, ok := err.(typerr.Error)
	if assert.True(t, ok) {
		assert.Contains(t, typerr.FormatWithCode(typed), "(E001)")
	}

	// the prior record is untouched
	record, err := registry.Get("Pair")
	assert.NoError(t, err)
	assert.Equal(t, 1, record.Arity())
	assert.False(t, record.Invalidated())
}

func TestGetUnknownConstructor(t *testing.T) {
	registry := types.NewRegistry(nil)

	_, err := registry.Get("Nowhere")
	assert.Error(t, err)
	assert.Equal(t, typerr.UnknownConstructor, typerr.CodeOf(err))

	_, ok := registry.Lookup("Nowhere")
	assert.False(t, ok)
}

func TestReplaceFreshNameEmitsNoAdvisory(t *testing.T) {
	handler := &recordingHandler{}
	registry := types.NewRegistry(slog.New(handler))

	record := registry.NewTypeConstructor("Stream", 1)
	installed := registry.Replace("Stream", record)

	assert.Same(t, record, installed)
	assert.False(t, record.Invalidated())
	assert.Empty(t, handler.records)

	found, ok := registry.Lookup("Stream")
	assert.True(t, ok)
	assert.Same(t, record, found)
}

func TestReplaceSameRecordIsNoop(t *testing.T) {
	handler := &recordingHandler{}
	registry := types.NewRegistry(slog.New(handler))

	record, err := registry.Register("Stream", 1)
	assert.NoError(t, err)
	registry.Replace("Stream", record)

	assert.False(t, record.Invalidated())
	assert.Empty(t, handler.records)
}

func TestReplaceClobbersAndInvalidatesOldRecord(t *testing.T) {
	handler := &recordingHandler{}
	registry := types.NewRegistry(slog.New(handler))

	old, err := registry.Register("Stream", 1)
	assert.NoError(t, err)

	replacement := registry.NewTypeConstructor("Stream", 1)
	registry.Replace("Stream", replacement)

	assert.True(t, old.Invalidated())
	assert.False(t, replacement.Invalidated())
	assert.Equal(t, types.InvalidatedName, old.EffectiveName())
	assert.Equal(t, "Stream", replacement.EffectiveName())

	found, ok := registry.Lookup("Stream")
	assert.True(t, ok)
	assert.Same(t, replacement, found)

	if assert.Len(t, handler.records, 1) {
		assert.Equal(t, slog.LevelWarn, handler.records[0].Level)
	}
}

func TestAllIteratesInRegistrationOrder(t *testing.T) {
	registry := types.NewRegistry(nil)
	for _, name := range []string{"Gamma", "Alpha", "Beta"} {
		_, err := registry.Register(name, 0)
		assert.NoError(t, err)
	}

	var names []string
	for name, record := range registry.All() {
		names = append(names, name)
		assert.Equal(t, name, record.Name())
	}
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, names)
}

func TestRegistryTypeNamerAvoidsRegisteredNames(t *testing.T) {
	registry := types.NewRegistry(nil)
	_, err := registry.Register("Alpha", 0)
	assert.NoError(t, err)

	namer := registry.TypeNamer()
	fresher := types.NewFresher()
	assert.NotEqual(t, "Alpha", namer.NameOf(fresher.NewVariable("Alpha")))
	assert.Equal(t, "Beta", namer.NameOf(fresher.NewVariable("Beta")))
}

func TestOwnerOfValueConstructor(t *testing.T) {
	registry := types.Universe()

	owner, ok := registry.OwnerOfValueConstructor("Cons")
	assert.True(t, ok)
	assert.Equal(t, "List", owner.Name())

	owner, ok = registry.OwnerOfValueConstructor("Some")
	assert.True(t, ok)
	assert.Equal(t, "Optional", owner.Name())

	_, ok = registry.OwnerOfValueConstructor("NotAConstructor")
	assert.False(t, ok)
}

func TestHasConstructor(t *testing.T) {
	registry := types.Universe()
	boolean, err := registry.Get("Boolean")
	assert.NoError(t, err)

	assert.True(t, boolean.HasConstructor("True"))
	assert.True(t, boolean.HasConstructor("False"))
	assert.False(t, boolean.HasConstructor("Cons"))
}
