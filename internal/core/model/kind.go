package model

import "fmt"

// Kind selects which canonical schema and alias table apply to a record.
type Kind string

const (
	KindMonster  Kind = "monster"
	KindItem     Kind = "item"
	KindDialogue Kind = "dialogue"
)

// Entity is a fully validated, immutable record ready for persistence.
type Entity interface {
	Kind() Kind
	// Name returns the display name used for file naming and metadata.
	Name() string
}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMonster, KindItem, KindDialogue:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown record kind: %q", s)
}
