package supplements

import (
	"context"
	"strings"
	"supplements-backend/services/supplements/db"

	"go.opentelemetry.io/otel/attribute"
)

// LookupKind names one of the user managed option lists that the catalog
// forms pick dosages, types and categories from.
type LookupKind string

const (
	LookupDosageUnit      LookupKind = "dosage_unit"
	LookupDosageFrequency LookupKind = "dosage_frequency"
	LookupSupplementType  LookupKind = "supplement_type"
	LookupCategory        LookupKind = "category"
)

var LookupKinds = []LookupKind{
	LookupDosageUnit,
	LookupDosageFrequency,
	LookupSupplementType,
	LookupCategory,
}

// ParseLookupKind accepts the kind names case-insensitively with either
// '_' or '-' as the separator.
func ParseLookupKind(raw string) (LookupKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_")
	for _, kind := range LookupKinds {
		if string(kind) == normalized {
			return kind, nil
		}
	}
	return "", invalid("unknown lookup kind %q", raw)
}

func (k LookupKind) validate() error {
	_, err := ParseLookupKind(string(k))
	return err
}

// ListLookupOptions returns the options of a kind sorted by name.
func (s Service) ListLookupOptions(ctx context.Context, kind LookupKind) ([]string, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	rows, err := s.qry.ListLookupOptions(ctx, string(kind))
	if err != nil {
		return nil, s.persistenceError(report_lookup_list, err)
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Name
	}
	return out, nil
}

// AddLookupOption adds a trimmed, non-empty name to the list of a kind,
// adding a name that is already present changes nothing.
func (s Service) AddLookupOption(ctx context.Context, kind LookupKind, name string) error {
	ctx, span := tracer.Start(ctx, "AddLookupOption")
	defer span.End()

	if err := kind.validate(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return invalid("%s name must not be empty", kind)
	}
	span.SetAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("name", name),
	)

	_, err := s.qry.AddLookupOption(ctx, db.AddLookupOptionParams{
		Kind: string(kind),
		Name: name,
	})
	if err != nil {
		return s.persistenceError(report_lookup_add, err)
	}
	return nil
}

func (s Service) DeleteLookupOption(ctx context.Context, kind LookupKind, name string) error {
	if err := kind.validate(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	affected, err := s.qry.DeleteLookupOption(ctx, db.DeleteLookupOptionParams{
		Kind: string(kind),
		Name: name,
	})
	if err != nil {
		return s.persistenceError(report_lookup_delete, err)
	}
	if affected == 0 {
		return notFound(string(kind), name)
	}
	return nil
}
